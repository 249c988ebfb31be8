package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trackzone_backend/internals/configs"
	"trackzone_backend/internals/constants"
	attModel "trackzone_backend/internals/features/attendance/attendance/model"
	"trackzone_backend/internals/features/attendance/checkin/model"
	empModel "trackzone_backend/internals/features/users/employee/model"
)

func testCfg() configs.AttendanceConfig {
	return configs.AttendanceConfig{
		OfficeLat:        10.8261981,
		OfficeLon:        77.0608064,
		GeofenceRadiusM:  500000,
		CheckInOpenHour:  9,
		CheckInCloseHour: 19,
		LateAfter:        "09:15",
		HourlyRate:       100,
	}
}

// ===== aturan murni =====

func TestWithinWindowBoundaries(t *testing.T) {
	cfg := testCfg()
	at := func(hh, mm int) time.Time {
		return time.Date(2024, time.June, 10, hh, mm, 0, 0, time.UTC)
	}

	assert.False(t, WithinWindow(cfg, at(8, 59)))
	assert.True(t, WithinWindow(cfg, at(9, 0)))
	assert.True(t, WithinWindow(cfg, at(18, 59)))
	assert.False(t, WithinWindow(cfg, at(19, 0)))
}

func TestDeriveStatusLateAfter(t *testing.T) {
	cfg := testCfg()
	at := func(hh, mm int) time.Time {
		return time.Date(2024, time.June, 10, hh, mm, 0, 0, time.UTC)
	}

	assert.Equal(t, constants.StatusPresent, DeriveStatus(cfg, at(9, 10)))
	assert.Equal(t, constants.StatusPresent, DeriveStatus(cfg, at(9, 15)))
	assert.Equal(t, constants.StatusLate, DeriveStatus(cfg, at(9, 16)))
}

func TestDecideSweep(t *testing.T) {
	checkIn := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)

	// tanpa event → sintesis check-in otomatis
	assert.Equal(t, SweepAutoOpen, DecideSweep(nil))
	// check-in manual masih terbuka → tutup otomatis
	assert.Equal(t, SweepAutoClose, DecideSweep(&model.CheckInEventModel{
		CheckInEventCheckInTime: &checkIn,
	}))
	// sudah tertutup → tidak disentuh
	assert.Equal(t, SweepNone, DecideSweep(&model.CheckInEventModel{
		CheckInEventCheckInTime:  &checkIn,
		CheckInEventCheckOutTime: &checkOut,
	}))
	// event sintetis dari sweep sebelumnya → tidak ditutup dengan 0 jam
	assert.Equal(t, SweepNone, DecideSweep(&model.CheckInEventModel{
		CheckInEventCheckInTime: &checkIn,
		CheckInEventIsAuto:      true,
	}))
}

func TestConfigFenceAllows(t *testing.T) {
	fence := ConfigFence{Cfg: testCfg()}

	// titik kantor sendiri
	ok, err := fence.Allows(10.8261981, 77.0608064)
	require.NoError(t, err)
	assert.True(t, ok)

	// Delhi — ribuan kilometer dari kantor
	ok, err = fence.Allows(28.6139, 77.2090)
	require.NoError(t, err)
	assert.False(t, ok)
}

// ===== integrasi sqlite =====

type allowAllFence struct{}

func (allowAllFence) Allows(lat, lon float64) (bool, error) { return true, nil }

func newCheckinTestService(t *testing.T) *CheckinService {
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
		&empModel.EmployeeModel{},
		&attModel.AttendanceYearModel{},
		&attModel.AttendanceMonthModel{},
		&attModel.AttendanceDayModel{},
		&model.CheckInEventModel{},
	))

	svc := NewCheckinService(db, testCfg(), nil)
	svc.Fence = allowAllFence{}
	return svc
}

func seedEmployee(t *testing.T, db *gorm.DB, code, name string) {
	t.Helper()
	require.NoError(t, db.Create(&empModel.EmployeeModel{
		EmployeeCode:     code,
		EmployeeName:     name,
		EmployeeEmail:    code + "@trackzone.test",
		EmployeePassword: "x",
		EmployeeIsActive: true,
	}).Error)
}

func fixedNow(hh, mm int) func() time.Time {
	return func() time.Time {
		return time.Date(2024, time.June, 10, hh, mm, 0, 0, time.UTC)
	}
}

func TestCheckInCreatesEventAndDayRecord(t *testing.T) {
	svc := newCheckinTestService(t)
	seedEmployee(t, svc.DB, "EMP001", "Arun")
	svc.Now = fixedNow(9, 10)

	ev, err := svc.CheckIn("EMP001", 10.82, 77.06)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPresent, ev.CheckInEventStatus)
	require.NotNil(t, ev.CheckInEventCheckInTime)

	yr, err := svc.Agg.GetYear("EMP001", 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, yr.AttendanceYearPresentDays)
}

func TestCheckInTwiceSameDayRejected(t *testing.T) {
	svc := newCheckinTestService(t)
	seedEmployee(t, svc.DB, "EMP001", "Arun")
	svc.Now = fixedNow(9, 10)

	_, err := svc.CheckIn("EMP001", 10.82, 77.06)
	require.NoError(t, err)

	_, err = svc.CheckIn("EMP001", 10.82, 77.06)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
}

func TestCheckInOutsideWindow(t *testing.T) {
	svc := newCheckinTestService(t)
	seedEmployee(t, svc.DB, "EMP001", "Arun")
	svc.Now = fixedNow(20, 0)

	_, err := svc.CheckIn("EMP001", 10.82, 77.06)
	assert.ErrorIs(t, err, ErrOutsideWindow)
}

func TestCheckInLateStatus(t *testing.T) {
	svc := newCheckinTestService(t)
	seedEmployee(t, svc.DB, "EMP001", "Arun")
	svc.Now = fixedNow(9, 40)

	ev, err := svc.CheckIn("EMP001", 10.82, 77.06)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusLate, ev.CheckInEventStatus)

	yr, err := svc.Agg.GetYear("EMP001", 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, yr.AttendanceYearLateDays)
}

func TestCheckOutComputesHours(t *testing.T) {
	svc := newCheckinTestService(t)
	seedEmployee(t, svc.DB, "EMP001", "Arun")

	svc.Now = fixedNow(9, 0)
	_, err := svc.CheckIn("EMP001", 10.82, 77.06)
	require.NoError(t, err)

	svc.Now = fixedNow(17, 30)
	ev, err := svc.CheckOut("EMP001")
	require.NoError(t, err)
	require.NotNil(t, ev.CheckInEventHoursWorked)
	assert.Equal(t, 8.5, *ev.CheckInEventHoursWorked)

	yr, err := svc.Agg.GetYear("EMP001", 2024)
	require.NoError(t, err)
	require.Len(t, yr.Months, 1)
	require.Len(t, yr.Months[0].Days, 1)
	require.NotNil(t, yr.Months[0].Days[0].AttendanceDayHoursWorked)
	assert.Equal(t, 8.5, *yr.Months[0].Days[0].AttendanceDayHoursWorked)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc := newCheckinTestService(t)
	seedEmployee(t, svc.DB, "EMP001", "Arun")
	svc.Now = fixedNow(17, 0)

	_, err := svc.CheckOut("EMP001")
	assert.ErrorIs(t, err, ErrNotCheckedIn)
}

func TestCheckOutTwiceRejected(t *testing.T) {
	svc := newCheckinTestService(t)
	seedEmployee(t, svc.DB, "EMP001", "Arun")

	svc.Now = fixedNow(9, 0)
	_, err := svc.CheckIn("EMP001", 10.82, 77.06)
	require.NoError(t, err)

	svc.Now = fixedNow(17, 0)
	_, err = svc.CheckOut("EMP001")
	require.NoError(t, err)

	_, err = svc.CheckOut("EMP001")
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestRunAutoSweep(t *testing.T) {
	svc := newCheckinTestService(t)
	seedEmployee(t, svc.DB, "EMP001", "Arun")
	seedEmployee(t, svc.DB, "EMP002", "Bela")

	// EMP001 check-in tapi lupa check-out; EMP002 tidak muncul
	svc.Now = fixedNow(9, 0)
	_, err := svc.CheckIn("EMP001", 10.82, 77.06)
	require.NoError(t, err)

	sweepAt := time.Date(2024, time.June, 10, 17, 0, 0, 0, time.UTC)
	results := svc.RunAutoSweep(sweepAt)
	require.Len(t, results, 2)

	byCode := map[string]SweepResult{}
	for _, r := range results {
		require.NoError(t, r.Err)
		byCode[r.EmployeeCode] = r
	}
	assert.Equal(t, SweepAutoClose, byCode["EMP001"].Action)
	assert.Equal(t, SweepAutoOpen, byCode["EMP002"].Action)

	// event EMP001 tertutup dengan jam kerja terhitung
	var ev model.CheckInEventModel
	require.NoError(t, svc.DB.
		Where("check_in_event_employee_id = ?", "EMP001").First(&ev).Error)
	assert.True(t, ev.CheckInEventIsAuto)
	require.NotNil(t, ev.CheckInEventHoursWorked)
	assert.Equal(t, 8.0, *ev.CheckInEventHoursWorked)

	// EMP002 dapat check-in sintetis: Present, jam masuk = jam sweep
	var opened model.CheckInEventModel
	require.NoError(t, svc.DB.
		Where("check_in_event_employee_id = ?", "EMP002").First(&opened).Error)
	assert.True(t, opened.CheckInEventIsAuto)
	assert.Equal(t, constants.StatusPresent, opened.CheckInEventStatus)
	require.NotNil(t, opened.CheckInEventCheckInTime)
	assert.True(t, opened.CheckInEventCheckInTime.Equal(sweepAt))
	assert.Nil(t, opened.CheckInEventCheckOutTime)

	yr, err := svc.Agg.GetYear("EMP002", 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, yr.AttendanceYearPresentDays)
	assert.Equal(t, 0, yr.AttendanceYearAbsentDays)
}

func TestRunAutoSweepIdempotent(t *testing.T) {
	svc := newCheckinTestService(t)
	seedEmployee(t, svc.DB, "EMP001", "Arun")

	svc.Now = fixedNow(9, 0)
	_, err := svc.CheckIn("EMP001", 10.82, 77.06)
	require.NoError(t, err)

	sweepAt := time.Date(2024, time.June, 10, 17, 0, 0, 0, time.UTC)
	first := svc.RunAutoSweep(sweepAt)
	second := svc.RunAutoSweep(sweepAt)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, SweepAutoClose, first[0].Action)
	assert.Equal(t, SweepNone, second[0].Action)

	// tetap satu event per (employee, tanggal)
	var count int64
	require.NoError(t, svc.DB.Model(&model.CheckInEventModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRunAutoSweepTwiceKeepsOneAutoEvent(t *testing.T) {
	svc := newCheckinTestService(t)
	seedEmployee(t, svc.DB, "EMP001", "Arun")

	// tanpa aktivitas manual sama sekali; sweep dua kali di jam yang sama
	sweepAt := time.Date(2024, time.June, 10, 17, 0, 0, 0, time.UTC)
	first := svc.RunAutoSweep(sweepAt)
	second := svc.RunAutoSweep(sweepAt.Add(10 * time.Minute))

	require.Len(t, first, 1)
	require.NoError(t, first[0].Err)
	assert.Equal(t, SweepAutoOpen, first[0].Action)
	require.Len(t, second, 1)
	require.NoError(t, second[0].Err)
	assert.Equal(t, SweepNone, second[0].Action)

	var events []model.CheckInEventModel
	require.NoError(t, svc.DB.Find(&events).Error)
	require.Len(t, events, 1)
	assert.True(t, events[0].CheckInEventIsAuto)
	assert.Equal(t, constants.StatusPresent, events[0].CheckInEventStatus)

	yr, err := svc.Agg.GetYear("EMP001", 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, yr.AttendanceYearTotalWorkingDays)
	assert.Equal(t, 1, yr.AttendanceYearPresentDays)
}

func TestCheckInOutsideGeofenceRejected(t *testing.T) {
	svc := newCheckinTestService(t)
	seedEmployee(t, svc.DB, "EMP001", "Arun")
	svc.Fence = ConfigFence{Cfg: testCfg()}
	svc.Now = fixedNow(9, 10)

	// Berlin — jauh di luar radius 500 km dari kantor
	_, err := svc.CheckIn("EMP001", 52.5200, 13.4050)
	assert.ErrorIs(t, err, ErrOutsideGeofence)

	// ditolak sebelum ada yang tersimpan
	var count int64
	require.NoError(t, svc.DB.Model(&model.CheckInEventModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	_, gerr := svc.Agg.GetYear("EMP001", 2024)
	assert.Error(t, gerr)
}

func TestVerifyFingerprint(t *testing.T) {
	svc := newCheckinTestService(t)
	seedEmployee(t, svc.DB, "EMP001", "Arun")
	svc.Now = fixedNow(9, 0)

	// belum enrol
	err := svc.VerifyFingerprint("EMP001", "sample-123")
	assert.ErrorIs(t, err, ErrNoFingerprint)

	hashed, err := bcrypt.GenerateFromPassword([]byte("sample-123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, svc.DB.Model(&empModel.EmployeeModel{}).
		Where("employee_code = ?", "EMP001").
		Update("employee_fingerprint_hash", string(hashed)).Error)

	// sample salah dilaporkan apa adanya
	err = svc.VerifyFingerprint("EMP001", "sample-999")
	assert.ErrorIs(t, err, ErrFingerprintMismatch)

	require.NoError(t, svc.VerifyFingerprint("EMP001", "sample-123"))
}
