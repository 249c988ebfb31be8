package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trackzone_backend/internals/constants"
	attModel "trackzone_backend/internals/features/attendance/attendance/model"
	"trackzone_backend/internals/features/leaves/model"
)

func newLeaveTestService(t *testing.T) *LeaveService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.LeaveRequestModel{},
		&attModel.AttendanceYearModel{},
		&attModel.AttendanceMonthModel{},
		&attModel.AttendanceDayModel{},
	))
	return NewLeaveService(db)
}

func TestSubmitRejectsInvertedRange(t *testing.T) {
	svc := newLeaveTestService(t)
	start := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.Submit("EMP001", start, end, "keperluan keluarga")
	assert.ErrorIs(t, err, ErrLeaveInvalidRange)
}

func TestApproveWritesLeaveDays(t *testing.T) {
	svc := newLeaveTestService(t)
	start := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)

	req, err := svc.Submit("EMP001", start, end, "keperluan keluarga")
	require.NoError(t, err)
	assert.Equal(t, constants.LeavePending, req.LeaveRequestStatus)

	decided, err := svc.Decide(req.LeaveRequestID.String(), constants.LeaveApproved, "ok")
	require.NoError(t, err)
	assert.Equal(t, constants.LeaveApproved, decided.LeaveRequestStatus)

	yr, err := svc.Agg.GetYear("EMP001", 2024)
	require.NoError(t, err)
	assert.Equal(t, 3, yr.AttendanceYearLeavesTaken)
	assert.Equal(t, 3, yr.AttendanceYearTotalWorkingDays)
}

func TestRejectDoesNotTouchAttendance(t *testing.T) {
	svc := newLeaveTestService(t)
	start := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	req, err := svc.Submit("EMP001", start, start, "sakit")
	require.NoError(t, err)

	_, err = svc.Decide(req.LeaveRequestID.String(), constants.LeaveRejected, "")
	require.NoError(t, err)

	_, err = svc.Agg.GetYear("EMP001", 2024)
	assert.Error(t, err)
}

func TestDecideTwiceRejected(t *testing.T) {
	svc := newLeaveTestService(t)
	start := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	req, err := svc.Submit("EMP001", start, start, "sakit")
	require.NoError(t, err)

	_, err = svc.Decide(req.LeaveRequestID.String(), constants.LeaveApproved, "")
	require.NoError(t, err)

	_, err = svc.Decide(req.LeaveRequestID.String(), constants.LeaveRejected, "")
	assert.ErrorIs(t, err, ErrLeaveAlreadyDecided)
}

func TestApproveSpansYears(t *testing.T) {
	svc := newLeaveTestService(t)
	start := time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	req, err := svc.Submit("EMP001", start, end, "liburan")
	require.NoError(t, err)
	_, err = svc.Decide(req.LeaveRequestID.String(), constants.LeaveApproved, "")
	require.NoError(t, err)

	y2024, err := svc.Agg.GetYear("EMP001", 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, y2024.AttendanceYearLeavesTaken)

	y2025, err := svc.Agg.GetYear("EMP001", 2025)
	require.NoError(t, err)
	assert.Equal(t, 2, y2025.AttendanceYearLeavesTaken)
}
