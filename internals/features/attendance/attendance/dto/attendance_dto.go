package dto

import (
	"time"

	"trackzone_backend/internals/features/attendance/attendance/model"
	"trackzone_backend/internals/features/attendance/attendance/service"
)

// ================== REQUEST ==================

// UpdateDayRequest: koreksi admin untuk satu tanggal.
type UpdateDayRequest struct {
	Day          int     `json:"day" validate:"required,min=1,max=31"`
	Status       string  `json:"status" validate:"required,oneof=Present Late Absent Half-day Holiday Leave"`
	CheckInTime  *string `json:"check_in_time" validate:"omitempty"`  // RFC3339
	CheckOutTime *string `json:"check_out_time" validate:"omitempty"` // RFC3339
}

// ================== RESPONSE ==================

type DayResponse struct {
	Date         string   `json:"date"`
	Status       string   `json:"status"`
	CheckInTime  *string  `json:"check_in_time,omitempty"`
	CheckOutTime *string  `json:"check_out_time,omitempty"`
	HoursWorked  *float64 `json:"hours_worked,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

type MonthSummaryResponse struct {
	Month            int    `json:"month"`
	TotalWorkingDays int    `json:"total_working_days"`
	PresentDays      int    `json:"present_days"`
	AbsentDays       int    `json:"absent_days"`
	LateDays         int    `json:"late_days"`
	HalfDays         int    `json:"half_days"`
	LeavesTaken      int    `json:"leaves_taken"`
	ApprovalStatus   string `json:"approval_status"`
}

type MonthResponse struct {
	Days    []DayResponse        `json:"days"`
	Summary MonthSummaryResponse `json:"summary"`
}

type YearSummaryResponse struct {
	EmployeeID       string `json:"employee_id"`
	Year             int    `json:"year"`
	TotalWorkingDays int    `json:"total_working_days"`
	PresentDays      int    `json:"present_days"`
	AbsentDays       int    `json:"absent_days"`
	LateDays         int    `json:"late_days"`
	HalfDays         int    `json:"half_days"`
	LeavesTaken      int    `json:"leaves_taken"`
}

// ================ CONVERSION =================

func toTimeStr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func ToDayResponse(d *model.AttendanceDayModel) DayResponse {
	return DayResponse{
		Date:         service.DayKey(d.AttendanceDayDate),
		Status:       d.AttendanceDayStatus,
		CheckInTime:  toTimeStr(d.AttendanceDayCheckInTime),
		CheckOutTime: toTimeStr(d.AttendanceDayCheckOutTime),
		HoursWorked:  d.AttendanceDayHoursWorked,
		Notes:        d.AttendanceDayNotes,
	}
}

func ToMonthResponse(m *model.AttendanceMonthModel) MonthResponse {
	days := make([]DayResponse, 0, len(m.Days))
	for i := range m.Days {
		days = append(days, ToDayResponse(&m.Days[i]))
	}
	return MonthResponse{
		Days: days,
		Summary: MonthSummaryResponse{
			Month:            m.AttendanceMonthMonth,
			TotalWorkingDays: m.AttendanceMonthTotalWorkingDays,
			PresentDays:      m.AttendanceMonthPresentDays,
			AbsentDays:       m.AttendanceMonthAbsentDays,
			LateDays:         m.AttendanceMonthLateDays,
			HalfDays:         m.AttendanceMonthHalfDays,
			LeavesTaken:      m.AttendanceMonthLeavesTaken,
			ApprovalStatus:   m.AttendanceMonthApprovalStatus,
		},
	}
}

func ToYearSummaryResponse(y *model.AttendanceYearModel) YearSummaryResponse {
	return YearSummaryResponse{
		EmployeeID:       y.AttendanceYearEmployeeID,
		Year:             y.AttendanceYearYear,
		TotalWorkingDays: y.AttendanceYearTotalWorkingDays,
		PresentDays:      y.AttendanceYearPresentDays,
		AbsentDays:       y.AttendanceYearAbsentDays,
		LateDays:         y.AttendanceYearLateDays,
		HalfDays:         y.AttendanceYearHalfDays,
		LeavesTaken:      y.AttendanceYearLeavesTaken,
	}
}
