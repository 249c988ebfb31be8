// file: internals/features/attendance/checkin/service/reconciler_service.go
//
// Reconciler check-in/check-out: event mentah dari karyawan (atau sweep
// otomatis) diterjemahkan jadi day record, lalu diteruskan ke agregasi
// bulanan+tahunan dalam satu transaksi. Gerbang urutan: jam layanan →
// geofence → duplikat.
package service

import (
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trackzone_backend/internals/configs"
	"trackzone_backend/internals/constants"
	aggService "trackzone_backend/internals/features/attendance/attendance/service"

	attModel "trackzone_backend/internals/features/attendance/attendance/model"
	"trackzone_backend/internals/features/attendance/checkin/model"
	empModel "trackzone_backend/internals/features/users/employee/model"

	helper "trackzone_backend/internals/helpers"
)

// FenceChecker menjawab satu pertanyaan: apakah koordinat ini boleh check-in.
// Implementasi default lingkaran dari config; feature geofence menimpanya
// dengan zona dari DB.
type FenceChecker interface {
	Allows(lat, lon float64) (bool, error)
}

// ConfigFence: lingkaran tunggal di sekitar titik kantor dari env.
type ConfigFence struct {
	Cfg configs.AttendanceConfig
}

func (f ConfigFence) Allows(lat, lon float64) (bool, error) {
	d := helper.DistanceMeters(f.Cfg.OfficeLat, f.Cfg.OfficeLon, lat, lon)
	return d <= f.Cfg.GeofenceRadiusM, nil
}

// Notifier: push notifikasi; panggilan tidak boleh memblok alur check-in.
type Notifier interface {
	EmitCheckIn(employeeName string, at time.Time)
	EmitCheckOut(employeeName string, at time.Time)
}

type CheckinService struct {
	DB       *gorm.DB
	Cfg      configs.AttendanceConfig
	Agg      *aggService.AttendanceService
	Fence    FenceChecker
	Notifier Notifier

	// injectable supaya reconciler bisa diuji tanpa menunggu jam dinding
	Now func() time.Time

	mu      sync.Mutex
	lockDay string
	locks   map[string]*sync.Mutex
}

func NewCheckinService(db *gorm.DB, cfg configs.AttendanceConfig, notifier Notifier) *CheckinService {
	return &CheckinService{
		DB:       db,
		Cfg:      cfg,
		Agg:      aggService.NewAttendanceService(db),
		Fence:    ConfigFence{Cfg: cfg},
		Notifier: notifier,
		Now:      time.Now,
		locks:    map[string]*sync.Mutex{},
	}
}

// lockFor: serialisasi per (employee, tanggal) — dua request check-in paralel
// untuk orang yang sama antre di sini, bukan saling menimpa. Semua operasi
// memakai tanggal hari ini, jadi saat tanggal berganti map-nya di-reset agar
// tidak tumbuh tanpa batas di proses yang hidup lama.
func (s *CheckinService) lockFor(employeeID string, day time.Time) *sync.Mutex {
	dk := aggService.DayKey(day)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lockDay != dk {
		s.lockDay = dk
		s.locks = map[string]*sync.Mutex{}
	}
	if l, ok := s.locks[employeeID]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[employeeID] = l
	return l
}

// ===== aturan murni (tanpa DB) =====

// WithinWindow: check-in hanya diterima pada [open, close) jam lokal.
func WithinWindow(cfg configs.AttendanceConfig, t time.Time) bool {
	h := t.Hour()
	return h >= cfg.CheckInOpenHour && h < cfg.CheckInCloseHour
}

// DeriveStatus: lewat batas LateAfter → Late, selain itu Present.
func DeriveStatus(cfg configs.AttendanceConfig, t time.Time) string {
	minutes := t.Hour()*60 + t.Minute()
	if minutes > cfg.LateAfterMinutes() {
		return constants.StatusLate
	}
	return constants.StatusPresent
}

type SweepAction int

const (
	SweepNone SweepAction = iota
	SweepAutoClose
	SweepAutoOpen
)

// DecideSweep: keputusan sweep untuk satu karyawan pada satu tanggal.
// Tidak ada event → sintesis check-in otomatis (Present, jam = jam sweep);
// check-in manual yang masih terbuka → tutup otomatis; event sintetis yang
// terbuka atau event yang sudah tertutup → tidak disentuh, sehingga sweep
// kedua pada jam yang sama jadi no-op.
func DecideSweep(ev *model.CheckInEventModel) SweepAction {
	switch {
	case ev == nil:
		return SweepAutoOpen
	case ev.CheckInEventCheckOutTime == nil && ev.CheckInEventCheckInTime != nil && !ev.CheckInEventIsAuto:
		return SweepAutoClose
	default:
		return SweepNone
	}
}

// ===== operasi =====

// CheckIn mencatat kehadiran hari ini untuk satu karyawan.
func (s *CheckinService) CheckIn(employeeCode string, lat, lon float64) (*model.CheckInEventModel, error) {
	now := s.Now()
	day := aggService.TruncateDay(now)

	if !WithinWindow(s.Cfg, now) {
		return nil, ErrOutsideWindow
	}
	ok, err := s.Fence.Allows(lat, lon)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOutsideGeofence
	}

	l := s.lockFor(employeeCode, day)
	l.Lock()
	defer l.Unlock()

	emp, err := s.findEmployee(employeeCode)
	if err != nil {
		return nil, err
	}

	var existing model.CheckInEventModel
	err = s.DB.Where("check_in_event_employee_id = ? AND check_in_event_date = ?", employeeCode, day).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyCheckedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := DeriveStatus(s.Cfg, now)
	checkIn := now
	ev := model.CheckInEventModel{
		CheckInEventEmployeeID:  employeeCode,
		CheckInEventDate:        day,
		CheckInEventCheckInTime: &checkIn,
		CheckInEventStatus:      status,
		CheckInEventLat:         &lat,
		CheckInEventLon:         &lon,
	}
	// event + agregasi satu transaksi: agregasi gagal → event ikut batal,
	// tidak ada rekap basi yang sempat terlihat
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ev).Error; err != nil {
			return err
		}
		_, err := aggService.NewAttendanceService(tx).ApplyDays(employeeCode, day.Year(), []attModel.AttendanceDayModel{{
			AttendanceDayDate:        day,
			AttendanceDayStatus:      status,
			AttendanceDayCheckInTime: &checkIn,
		}})
		return err
	})
	if err != nil {
		// unique (employee, date) — kalah race dengan request kembar
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}

	if s.Notifier != nil {
		go s.Notifier.EmitCheckIn(emp.EmployeeName, now)
	}
	return &ev, nil
}

// CheckOut menutup event hari ini dan menghitung jam kerja (2 desimal).
func (s *CheckinService) CheckOut(employeeCode string) (*model.CheckInEventModel, error) {
	now := s.Now()
	day := aggService.TruncateDay(now)

	l := s.lockFor(employeeCode, day)
	l.Lock()
	defer l.Unlock()

	emp, err := s.findEmployee(employeeCode)
	if err != nil {
		return nil, err
	}

	var ev model.CheckInEventModel
	err = s.DB.Where("check_in_event_employee_id = ? AND check_in_event_date = ?", employeeCode, day).
		First(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotCheckedIn
	}
	if err != nil {
		return nil, err
	}
	if ev.CheckInEventCheckInTime == nil {
		return nil, ErrNotCheckedIn
	}
	if ev.CheckInEventCheckOutTime != nil {
		return nil, ErrAlreadyCheckedOut
	}

	hours := aggService.RoundHours(now.Sub(*ev.CheckInEventCheckInTime).Hours())
	checkOut := now
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ev).Updates(map[string]any{
			"check_in_event_check_out_time": checkOut,
			"check_in_event_hours_worked":   hours,
		}).Error; err != nil {
			return err
		}
		_, err := aggService.NewAttendanceService(tx).ApplyDays(employeeCode, day.Year(), []attModel.AttendanceDayModel{{
			AttendanceDayDate:         day,
			AttendanceDayStatus:       ev.CheckInEventStatus,
			AttendanceDayCheckInTime:  ev.CheckInEventCheckInTime,
			AttendanceDayCheckOutTime: &checkOut,
		}})
		return err
	})
	if err != nil {
		return nil, err
	}
	ev.CheckInEventCheckOutTime = &checkOut
	ev.CheckInEventHoursWorked = &hours

	if s.Notifier != nil {
		go s.Notifier.EmitCheckOut(emp.EmployeeName, now)
	}
	return &ev, nil
}

// TodayEvent mengembalikan event hari ini (nil kalau belum ada).
func (s *CheckinService) TodayEvent(employeeCode string) (*model.CheckInEventModel, error) {
	day := aggService.TruncateDay(s.Now())
	var ev model.CheckInEventModel
	err := s.DB.Where("check_in_event_employee_id = ? AND check_in_event_date = ?", employeeCode, day).
		First(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// VerifyFingerprint membandingkan sample dengan hash terdaftar; mismatch
// selalu dilaporkan apa adanya, tidak ada jalan pintas.
func (s *CheckinService) VerifyFingerprint(employeeCode, sample string) error {
	emp, err := s.findEmployee(employeeCode)
	if err != nil {
		return err
	}
	if emp.EmployeeFingerprintHash == nil || *emp.EmployeeFingerprintHash == "" {
		return ErrNoFingerprint
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.EmployeeFingerprintHash), []byte(sample)); err != nil {
		return ErrFingerprintMismatch
	}

	day := aggService.TruncateDay(s.Now())
	if err := s.DB.Model(&model.CheckInEventModel{}).
		Where("check_in_event_employee_id = ? AND check_in_event_date = ?", employeeCode, day).
		Update("check_in_event_verified", true).Error; err != nil {
		return err
	}
	return nil
}

// SweepResult: hasil sweep per karyawan — error satu orang tidak
// membatalkan sweep untuk yang lain.
type SweepResult struct {
	EmployeeCode string
	Action       SweepAction
	Err          error
}

// RunAutoSweep menutup check-in manual yang masih terbuka pada sweepAt dan
// mensintesis check-in otomatis (Present, jam = sweepAt) untuk yang tidak
// punya event sama sekali. Idempotent: sweep kedua di jam yang sama tidak
// mengubah apa pun.
func (s *CheckinService) RunAutoSweep(sweepAt time.Time) []SweepResult {
	day := aggService.TruncateDay(sweepAt)

	var employees []empModel.EmployeeModel
	if err := s.DB.Where("employee_is_active = ?", true).Find(&employees).Error; err != nil {
		log.Printf("[SWEEP] gagal ambil daftar karyawan: %v", err)
		return nil
	}

	results := make([]SweepResult, 0, len(employees))
	for _, emp := range employees {
		code := emp.EmployeeCode
		res := SweepResult{EmployeeCode: code}

		var ev model.CheckInEventModel
		err := s.DB.Where("check_in_event_employee_id = ? AND check_in_event_date = ?", code, day).
			First(&ev).Error

		var found *model.CheckInEventModel
		switch {
		case err == nil:
			found = &ev
		case errors.Is(err, gorm.ErrRecordNotFound):
			found = nil
		default:
			res.Err = err
			results = append(results, res)
			continue
		}

		res.Action = DecideSweep(found)
		switch res.Action {
		case SweepAutoClose:
			res.Err = s.sweepClose(found, sweepAt)
		case SweepAutoOpen:
			res.Err = s.sweepOpen(code, sweepAt)
		}
		if res.Err != nil {
			log.Printf("[SWEEP] employee=%s gagal: %v", code, res.Err)
		}
		results = append(results, res)
	}
	return results
}

func (s *CheckinService) sweepClose(ev *model.CheckInEventModel, sweepAt time.Time) error {
	hours := aggService.RoundHours(sweepAt.Sub(*ev.CheckInEventCheckInTime).Hours())
	day := aggService.TruncateDay(sweepAt)
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(ev).Updates(map[string]any{
			"check_in_event_check_out_time": sweepAt,
			"check_in_event_hours_worked":   hours,
			"check_in_event_is_auto":        true,
		}).Error; err != nil {
			return err
		}
		_, err := aggService.NewAttendanceService(tx).ApplyDays(ev.CheckInEventEmployeeID, day.Year(), []attModel.AttendanceDayModel{{
			AttendanceDayDate:         day,
			AttendanceDayStatus:       ev.CheckInEventStatus,
			AttendanceDayCheckInTime:  ev.CheckInEventCheckInTime,
			AttendanceDayCheckOutTime: &sweepAt,
		}})
		return err
	})
}

// sweepOpen mensintesis check-in otomatis: Present, jam masuk = jam sweep.
func (s *CheckinService) sweepOpen(employeeCode string, sweepAt time.Time) error {
	day := aggService.TruncateDay(sweepAt)
	checkIn := sweepAt
	ev := model.CheckInEventModel{
		CheckInEventEmployeeID:  employeeCode,
		CheckInEventDate:        day,
		CheckInEventCheckInTime: &checkIn,
		CheckInEventStatus:      constants.StatusPresent,
		CheckInEventIsAuto:      true,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ev).Error; err != nil {
			return err
		}
		_, err := aggService.NewAttendanceService(tx).ApplyDays(employeeCode, day.Year(), []attModel.AttendanceDayModel{{
			AttendanceDayDate:        day,
			AttendanceDayStatus:      constants.StatusPresent,
			AttendanceDayCheckInTime: &checkIn,
		}})
		return err
	})
	// event muncul di sela sweep → biarkan, sweep berikutnya yang menilai
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (s *CheckinService) findEmployee(employeeCode string) (*empModel.EmployeeModel, error) {
	var emp empModel.EmployeeModel
	err := s.DB.Where("employee_code = ?", employeeCode).First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}
