package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceYearModel: satu record per (employee_id, year) — unik system-wide.
// Kolom summary selalu hasil hitung ulang dari bulan-bulan di bawahnya,
// tidak pernah di-set langsung.
type AttendanceYearModel struct {
	AttendanceYearID         uuid.UUID `gorm:"column:attendance_year_id;type:uuid;primaryKey" json:"attendance_year_id"`
	AttendanceYearEmployeeID string    `gorm:"column:attendance_year_employee_id;type:varchar(32);not null;uniqueIndex:uq_attendance_years_employee_year,priority:1" json:"attendance_year_employee_id"`
	AttendanceYearYear       int       `gorm:"column:attendance_year_year;not null;uniqueIndex:uq_attendance_years_employee_year,priority:2" json:"attendance_year_year"`

	AttendanceYearTotalWorkingDays int `gorm:"column:attendance_year_total_working_days;not null;default:0" json:"attendance_year_total_working_days"`
	AttendanceYearPresentDays      int `gorm:"column:attendance_year_present_days;not null;default:0" json:"attendance_year_present_days"`
	AttendanceYearAbsentDays       int `gorm:"column:attendance_year_absent_days;not null;default:0" json:"attendance_year_absent_days"`
	AttendanceYearLateDays         int `gorm:"column:attendance_year_late_days;not null;default:0" json:"attendance_year_late_days"`
	AttendanceYearHalfDays         int `gorm:"column:attendance_year_half_days;not null;default:0" json:"attendance_year_half_days"`
	AttendanceYearLeavesTaken      int `gorm:"column:attendance_year_leaves_taken;not null;default:0" json:"attendance_year_leaves_taken"`

	Months []AttendanceMonthModel `gorm:"foreignKey:AttendanceMonthYearID;references:AttendanceYearID" json:"months,omitempty"`

	AttendanceYearCreatedAt time.Time `gorm:"column:attendance_year_created_at;autoCreateTime" json:"attendance_year_created_at"`
	AttendanceYearUpdatedAt time.Time `gorm:"column:attendance_year_updated_at;autoUpdateTime" json:"attendance_year_updated_at"`
}

func (AttendanceYearModel) TableName() string {
	return "attendance_years"
}

func (m *AttendanceYearModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceYearID == uuid.Nil {
		m.AttendanceYearID = uuid.New()
	}
	return nil
}

// AttendanceMonthModel: satu record per nomor bulan dalam satu tahun.
// Counter bulanan = fungsi murni dari himpunan days-nya.
type AttendanceMonthModel struct {
	AttendanceMonthID     uuid.UUID `gorm:"column:attendance_month_id;type:uuid;primaryKey" json:"attendance_month_id"`
	AttendanceMonthYearID uuid.UUID `gorm:"column:attendance_month_year_id;type:uuid;not null;uniqueIndex:uq_attendance_months_year_month,priority:1" json:"attendance_month_year_id"`
	AttendanceMonthMonth  int       `gorm:"column:attendance_month_month;not null;uniqueIndex:uq_attendance_months_year_month,priority:2" json:"attendance_month_month"` // 1..12

	AttendanceMonthTotalWorkingDays int `gorm:"column:attendance_month_total_working_days;not null;default:0" json:"attendance_month_total_working_days"`
	AttendanceMonthPresentDays      int `gorm:"column:attendance_month_present_days;not null;default:0" json:"attendance_month_present_days"`
	AttendanceMonthAbsentDays       int `gorm:"column:attendance_month_absent_days;not null;default:0" json:"attendance_month_absent_days"`
	AttendanceMonthLateDays         int `gorm:"column:attendance_month_late_days;not null;default:0" json:"attendance_month_late_days"`
	AttendanceMonthHalfDays         int `gorm:"column:attendance_month_half_days;not null;default:0" json:"attendance_month_half_days"`
	AttendanceMonthLeavesTaken      int `gorm:"column:attendance_month_leaves_taken;not null;default:0" json:"attendance_month_leaves_taken"`

	AttendanceMonthApprovalStatus string `gorm:"column:attendance_month_approval_status;type:varchar(16);not null;default:'Pending'" json:"attendance_month_approval_status"`

	Days []AttendanceDayModel `gorm:"foreignKey:AttendanceDayMonthID;references:AttendanceMonthID" json:"days,omitempty"`

	AttendanceMonthCreatedAt time.Time `gorm:"column:attendance_month_created_at;autoCreateTime" json:"attendance_month_created_at"`
	AttendanceMonthUpdatedAt time.Time `gorm:"column:attendance_month_updated_at;autoUpdateTime" json:"attendance_month_updated_at"`
}

func (AttendanceMonthModel) TableName() string {
	return "attendance_months"
}

func (m *AttendanceMonthModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceMonthID == uuid.Nil {
		m.AttendanceMonthID = uuid.New()
	}
	return nil
}

// AttendanceDayModel: maksimal satu record per tanggal dalam satu bulan.
// hours_worked turunan dari check_in/check_out (lihat service.NormalizeDays).
type AttendanceDayModel struct {
	AttendanceDayID      uuid.UUID `gorm:"column:attendance_day_id;type:uuid;primaryKey" json:"attendance_day_id"`
	AttendanceDayMonthID uuid.UUID `gorm:"column:attendance_day_month_id;type:uuid;not null;uniqueIndex:uq_attendance_days_month_date,priority:1" json:"attendance_day_month_id"`

	AttendanceDayDate   time.Time `gorm:"column:attendance_day_date;type:date;not null;uniqueIndex:uq_attendance_days_month_date,priority:2" json:"attendance_day_date"`
	AttendanceDayStatus string    `gorm:"column:attendance_day_status;type:varchar(16);not null" json:"attendance_day_status"`

	AttendanceDayCheckInTime  *time.Time `gorm:"column:attendance_day_check_in_time" json:"attendance_day_check_in_time,omitempty"`
	AttendanceDayCheckOutTime *time.Time `gorm:"column:attendance_day_check_out_time" json:"attendance_day_check_out_time,omitempty"`
	AttendanceDayHoursWorked  *float64   `gorm:"column:attendance_day_hours_worked" json:"attendance_day_hours_worked,omitempty"`
	AttendanceDayNotes        *string    `gorm:"column:attendance_day_notes;type:text" json:"attendance_day_notes,omitempty"`

	AttendanceDayCreatedAt time.Time `gorm:"column:attendance_day_created_at;autoCreateTime" json:"attendance_day_created_at"`
	AttendanceDayUpdatedAt time.Time `gorm:"column:attendance_day_updated_at;autoUpdateTime" json:"attendance_day_updated_at"`
}

func (AttendanceDayModel) TableName() string {
	return "attendance_days"
}

func (m *AttendanceDayModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceDayID == uuid.Nil {
		m.AttendanceDayID = uuid.New()
	}
	return nil
}
