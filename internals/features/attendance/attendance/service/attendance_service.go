package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"trackzone_backend/internals/features/attendance/attendance/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrYearNotFound = errors.New("record absensi tahunan tidak ditemukan")

// AttendanceService: satu-satunya penulis counter bulan/tahun.
// Semua mutasi day record lewat ApplyDays supaya rekap tidak pernah basi
// terhadap event check-in terakhir.
type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// ApplyDays menerapkan day record (baru atau koreksi) untuk satu
// employee+tahun dalam SATU transaksi: merge per bulan → counter bulan →
// rekap tahunan. Race pada unique (employee_id, year) dipulihkan dengan
// refetch + merge ulang, bukan hard failure.
func (s *AttendanceService) ApplyDays(employeeID string, year int, days []model.AttendanceDayModel) (*model.AttendanceYearModel, error) {
	var out *model.AttendanceYearModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		yr, err := s.getOrCreateYear(tx, employeeID, year)
		if err != nil {
			return err
		}

		// kelompokkan hari baru per nomor bulan
		byMonth := map[int][]model.AttendanceDayModel{}
		for _, d := range days {
			if d.AttendanceDayDate.IsZero() {
				log.Printf("[AGGREGATE] drop day tanpa tanggal valid (employee=%s year=%d)", employeeID, year)
				continue
			}
			m := int(d.AttendanceDayDate.Month())
			byMonth[m] = append(byMonth[m], d)
		}

		for monthNum, monthDays := range byMonth {
			existing := findMonth(yr.Months, monthNum)
			merged, dropped, err := AggregateMonth(existing, monthNum, monthDays)
			if err != nil {
				return err
			}
			for range dropped {
				log.Printf("[AGGREGATE] day rusak di-drop dari rekap (employee=%s year=%d month=%d)", employeeID, year, monthNum)
			}

			if err := s.persistMonth(tx, yr, &merged); err != nil {
				return err
			}
			replaceMonth(yr, merged)
		}

		// rekap tahunan dihitung dalam transaksi yang sama — tidak ada
		// intermediate state yang bisa terbaca setelah commit
		if err := s.persistYearSummary(tx, yr); err != nil {
			return err
		}
		out = yr
		return nil
	})
	return out, err
}

// GetYear mengambil record tahunan lengkap (bulan + hari, terurut).
func (s *AttendanceService) GetYear(employeeID string, year int) (*model.AttendanceYearModel, error) {
	var yr model.AttendanceYearModel
	err := s.DB.
		Preload("Months", func(db *gorm.DB) *gorm.DB {
			return db.Order("attendance_month_month ASC")
		}).
		Preload("Months.Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("attendance_day_date ASC")
		}).
		Where("attendance_year_employee_id = ? AND attendance_year_year = ?", employeeID, year).
		First(&yr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrYearNotFound
	}
	if err != nil {
		return nil, err
	}
	return &yr, nil
}

// UpdateDay: koreksi admin untuk satu tanggal (status/jam), lalu agregasi
// ulang. Record tahunan harus sudah ada.
func (s *AttendanceService) UpdateDay(employeeID string, year int, date time.Time, status string, checkIn, checkOut *time.Time) (*model.AttendanceYearModel, error) {
	if _, err := s.GetYear(employeeID, year); err != nil {
		return nil, err
	}
	day := model.AttendanceDayModel{
		AttendanceDayDate:         date,
		AttendanceDayStatus:       status,
		AttendanceDayCheckInTime:  checkIn,
		AttendanceDayCheckOutTime: checkOut,
	}
	return s.ApplyDays(employeeID, year, []model.AttendanceDayModel{day})
}

// ===== internal =====

func (s *AttendanceService) getOrCreateYear(tx *gorm.DB, employeeID string, year int) (*model.AttendanceYearModel, error) {
	fetch := func() (*model.AttendanceYearModel, error) {
		var yr model.AttendanceYearModel
		err := tx.
			Preload("Months").
			Preload("Months.Days").
			Where("attendance_year_employee_id = ? AND attendance_year_year = ?", employeeID, year).
			First(&yr).Error
		if err != nil {
			return nil, err
		}
		return &yr, nil
	}

	yr, err := fetch()
	if err == nil {
		return yr, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := model.AttendanceYearModel{
		AttendanceYearEmployeeID: employeeID,
		AttendanceYearYear:       year,
	}
	if err := tx.Create(&fresh).Error; err != nil {
		// race dengan writer lain → retry-as-merge
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("[AGGREGATE] duplicate (employee=%s year=%d), refetch & merge", employeeID, year)
			return fetch()
		}
		return nil, err
	}
	return &fresh, nil
}

func (s *AttendanceService) persistMonth(tx *gorm.DB, yr *model.AttendanceYearModel, m *model.AttendanceMonthModel) error {
	m.AttendanceMonthYearID = yr.AttendanceYearID

	if m.AttendanceMonthID == uuid.Nil {
		// bulan baru: insert row bulan dulu tanpa days, days di-upsert terpisah
		row := *m
		row.Days = nil
		if err := tx.Omit("Days").Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// race di unique (year_id, month) → ambil row yang menang, merge ulang
				var existing model.AttendanceMonthModel
				if ferr := tx.Preload("Days").
					Where("attendance_month_year_id = ? AND attendance_month_month = ?", yr.AttendanceYearID, m.AttendanceMonthMonth).
					First(&existing).Error; ferr != nil {
					return ferr
				}
				merged, _, merr := AggregateMonth(&existing, m.AttendanceMonthMonth, m.Days)
				if merr != nil {
					return merr
				}
				*m = merged
				return s.persistMonth(tx, yr, m)
			}
			return err
		}
		m.AttendanceMonthID = row.AttendanceMonthID
	} else {
		if err := tx.Model(&model.AttendanceMonthModel{}).
			Where("attendance_month_id = ?", m.AttendanceMonthID).
			Updates(map[string]any{
				"attendance_month_total_working_days": m.AttendanceMonthTotalWorkingDays,
				"attendance_month_present_days":       m.AttendanceMonthPresentDays,
				"attendance_month_absent_days":        m.AttendanceMonthAbsentDays,
				"attendance_month_late_days":          m.AttendanceMonthLateDays,
				"attendance_month_half_days":          m.AttendanceMonthHalfDays,
				"attendance_month_leaves_taken":       m.AttendanceMonthLeavesTaken,
			}).Error; err != nil {
			return err
		}
	}

	// upsert days by (month_id, date): row lama tetap, field di-overwrite
	for i := range m.Days {
		m.Days[i].AttendanceDayMonthID = m.AttendanceMonthID
		day := m.Days[i]
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "attendance_day_month_id"}, {Name: "attendance_day_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_day_status",
				"attendance_day_check_in_time",
				"attendance_day_check_out_time",
				"attendance_day_hours_worked",
				"attendance_day_notes",
			}),
		}).Create(&day).Error; err != nil {
			return fmt.Errorf("upsert day %s: %w", DayKey(day.AttendanceDayDate), err)
		}
		m.Days[i].AttendanceDayID = day.AttendanceDayID
	}
	return nil
}

func (s *AttendanceService) persistYearSummary(tx *gorm.DB, yr *model.AttendanceYearModel) error {
	totals := SummarizeYear(yr.Months)
	yr.AttendanceYearTotalWorkingDays = totals.TotalWorkingDays
	yr.AttendanceYearPresentDays = totals.PresentDays
	yr.AttendanceYearAbsentDays = totals.AbsentDays
	yr.AttendanceYearLateDays = totals.LateDays
	yr.AttendanceYearHalfDays = totals.HalfDays
	yr.AttendanceYearLeavesTaken = totals.LeavesTaken

	return tx.Model(&model.AttendanceYearModel{}).
		Where("attendance_year_id = ?", yr.AttendanceYearID).
		Updates(map[string]any{
			"attendance_year_total_working_days": totals.TotalWorkingDays,
			"attendance_year_present_days":       totals.PresentDays,
			"attendance_year_absent_days":        totals.AbsentDays,
			"attendance_year_late_days":          totals.LateDays,
			"attendance_year_half_days":          totals.HalfDays,
			"attendance_year_leaves_taken":       totals.LeavesTaken,
		}).Error
}

func findMonth(months []model.AttendanceMonthModel, num int) *model.AttendanceMonthModel {
	for i := range months {
		if months[i].AttendanceMonthMonth == num {
			return &months[i]
		}
	}
	return nil
}

func replaceMonth(yr *model.AttendanceYearModel, merged model.AttendanceMonthModel) {
	for i := range yr.Months {
		if yr.Months[i].AttendanceMonthMonth == merged.AttendanceMonthMonth {
			yr.Months[i] = merged
			return
		}
	}
	yr.Months = append(yr.Months, merged)
}
