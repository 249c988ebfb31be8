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
	"trackzone_backend/internals/features/attendance/attendance/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// satu koneksi saja — tiap koneksi :memory: adalah DB terpisah
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.AttendanceYearModel{},
		&model.AttendanceMonthModel{},
		&model.AttendanceDayModel{},
	))
	return db
}

func TestApplyDaysCreatesYearMonthDay(t *testing.T) {
	svc := NewAttendanceService(newTestDB(t))

	yr, err := svc.ApplyDays("EMP001", 2024, []model.AttendanceDayModel{
		day(2024, time.June, 10, constants.StatusPresent),
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP001", yr.AttendanceYearEmployeeID)
	assert.Equal(t, 1, yr.AttendanceYearTotalWorkingDays)
	assert.Equal(t, 1, yr.AttendanceYearPresentDays)
	require.Len(t, yr.Months, 1)
	assert.Equal(t, 6, yr.Months[0].AttendanceMonthMonth)
	require.Len(t, yr.Months[0].Days, 1)
}

func TestApplyDaysMergesIntoExistingMonth(t *testing.T) {
	svc := NewAttendanceService(newTestDB(t))

	_, err := svc.ApplyDays("EMP001", 2024, []model.AttendanceDayModel{
		day(2024, time.June, 10, constants.StatusLate),
	})
	require.NoError(t, err)

	yr, err := svc.ApplyDays("EMP001", 2024, []model.AttendanceDayModel{
		day(2024, time.June, 11, constants.StatusPresent),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, yr.AttendanceYearTotalWorkingDays)
	assert.Equal(t, 1, yr.AttendanceYearLateDays)
	assert.Equal(t, 1, yr.AttendanceYearPresentDays)

	// satu row bulan, dua row hari — bukan duplikat bulan
	var monthCount, dayCount int64
	require.NoError(t, svc.DB.Model(&model.AttendanceMonthModel{}).Count(&monthCount).Error)
	require.NoError(t, svc.DB.Model(&model.AttendanceDayModel{}).Count(&dayCount).Error)
	assert.EqualValues(t, 1, monthCount)
	assert.EqualValues(t, 2, dayCount)
}

func TestApplyDaysSameDateUpdatesInPlace(t *testing.T) {
	svc := NewAttendanceService(newTestDB(t))

	_, err := svc.ApplyDays("EMP001", 2024, []model.AttendanceDayModel{
		day(2024, time.June, 10, constants.StatusAbsent),
	})
	require.NoError(t, err)

	yr, err := svc.ApplyDays("EMP001", 2024, []model.AttendanceDayModel{
		day(2024, time.June, 10, constants.StatusPresent),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, yr.AttendanceYearTotalWorkingDays)
	assert.Equal(t, 1, yr.AttendanceYearPresentDays)
	assert.Equal(t, 0, yr.AttendanceYearAbsentDays)

	var dayCount int64
	require.NoError(t, svc.DB.Model(&model.AttendanceDayModel{}).Count(&dayCount).Error)
	assert.EqualValues(t, 1, dayCount)
}

func TestApplyDaysIdempotentOnRepeat(t *testing.T) {
	svc := NewAttendanceService(newTestDB(t))
	input := []model.AttendanceDayModel{
		day(2024, time.June, 10, constants.StatusPresent),
		day(2024, time.June, 11, constants.StatusLate),
	}

	first, err := svc.ApplyDays("EMP001", 2024, input)
	require.NoError(t, err)
	second, err := svc.ApplyDays("EMP001", 2024, input)
	require.NoError(t, err)

	assert.Equal(t, first.AttendanceYearTotalWorkingDays, second.AttendanceYearTotalWorkingDays)
	assert.Equal(t, first.AttendanceYearPresentDays, second.AttendanceYearPresentDays)
	assert.Equal(t, first.AttendanceYearLateDays, second.AttendanceYearLateDays)
}

func TestApplyDaysAcrossMonths(t *testing.T) {
	svc := NewAttendanceService(newTestDB(t))

	yr, err := svc.ApplyDays("EMP001", 2024, []model.AttendanceDayModel{
		day(2024, time.June, 28, constants.StatusPresent),
		day(2024, time.July, 1, constants.StatusPresent),
	})
	require.NoError(t, err)

	assert.Len(t, yr.Months, 2)
	assert.Equal(t, 2, yr.AttendanceYearTotalWorkingDays)
	assert.Equal(t, 2, yr.AttendanceYearPresentDays)
}

func TestGetYearNotFound(t *testing.T) {
	svc := NewAttendanceService(newTestDB(t))
	_, err := svc.GetYear("EMP404", 2024)
	assert.ErrorIs(t, err, ErrYearNotFound)
}

func TestUpdateDayRequiresExistingYear(t *testing.T) {
	svc := NewAttendanceService(newTestDB(t))
	_, err := svc.UpdateDay("EMP001", 2024,
		time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		constants.StatusHoliday, nil, nil)
	assert.ErrorIs(t, err, ErrYearNotFound)
}

func TestUpdateDayCorrectsStatus(t *testing.T) {
	svc := NewAttendanceService(newTestDB(t))

	_, err := svc.ApplyDays("EMP001", 2024, []model.AttendanceDayModel{
		day(2024, time.June, 10, constants.StatusAbsent),
	})
	require.NoError(t, err)

	yr, err := svc.UpdateDay("EMP001", 2024,
		time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		constants.StatusLeave, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, yr.AttendanceYearAbsentDays)
	assert.Equal(t, 1, yr.AttendanceYearLeavesTaken)
}

func TestApplyDaysPersistsHours(t *testing.T) {
	svc := NewAttendanceService(newTestDB(t))

	d := day(2024, time.June, 10, constants.StatusPresent)
	d.AttendanceDayCheckInTime = ts(2024, time.June, 10, 9, 0)
	d.AttendanceDayCheckOutTime = ts(2024, time.June, 10, 17, 30)

	_, err := svc.ApplyDays("EMP001", 2024, []model.AttendanceDayModel{d})
	require.NoError(t, err)

	yr, err := svc.GetYear("EMP001", 2024)
	require.NoError(t, err)
	require.Len(t, yr.Months, 1)
	require.Len(t, yr.Months[0].Days, 1)
	require.NotNil(t, yr.Months[0].Days[0].AttendanceDayHoursWorked)
	assert.Equal(t, 8.5, *yr.Months[0].Days[0].AttendanceDayHoursWorked)
}
