package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	attService "trackzone_backend/internals/features/attendance/attendance/service"
	checkinModel "trackzone_backend/internals/features/attendance/checkin/model"
	checkinService "trackzone_backend/internals/features/attendance/checkin/service"
	helper "trackzone_backend/internals/helpers"
)

// GET /api/u/employees/dashboard
// Snapshot untuk layar utama karyawan: status hari ini + counter bulan
// berjalan + rekap tahun berjalan.
func (ctrl *EmployeeController) Dashboard(c *fiber.Ctx) error {
	code := helper.GetEmployeeID(c)
	if code == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak membawa employee_id")
	}

	now := time.Now()
	agg := attService.NewAttendanceService(ctrl.DB)
	chk := checkinService.NewCheckinService(ctrl.DB, ctrl.Cfg, nil)

	today, err := chk.TodayEvent(code)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// metrik 7 hari terakhir dari event check-in
	since := attService.TruncateDay(now.AddDate(0, 0, -6))
	var week []checkinModel.CheckInEventModel
	if err := ctrl.DB.
		Where("check_in_event_employee_id = ? AND check_in_event_date >= ?", code, since).
		Order("check_in_event_date ASC").
		Find(&week).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var weekHours float64
	for i := range week {
		if week[i].CheckInEventHoursWorked != nil {
			weekHours += *week[i].CheckInEventHoursWorked
		}
	}

	out := fiber.Map{
		"today": today,
		"last_7_days": fiber.Map{
			"days_recorded": len(week),
			"total_hours":   attService.RoundHours(weekHours),
		},
		"this_month": nil,
		"this_year":  nil,
	}

	yr, err := agg.GetYear(code, now.Year())
	if err != nil && !errors.Is(err, attService.ErrYearNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if yr != nil {
		out["this_year"] = fiber.Map{
			"total_working_days": yr.AttendanceYearTotalWorkingDays,
			"present_days":       yr.AttendanceYearPresentDays,
			"absent_days":        yr.AttendanceYearAbsentDays,
			"late_days":          yr.AttendanceYearLateDays,
			"half_days":          yr.AttendanceYearHalfDays,
			"leaves_taken":       yr.AttendanceYearLeavesTaken,
		}
		for i := range yr.Months {
			if yr.Months[i].AttendanceMonthMonth == int(now.Month()) {
				m := &yr.Months[i]
				out["this_month"] = fiber.Map{
					"month":              m.AttendanceMonthMonth,
					"total_working_days": m.AttendanceMonthTotalWorkingDays,
					"present_days":       m.AttendanceMonthPresentDays,
					"late_days":          m.AttendanceMonthLateDays,
					"approval_status":    m.AttendanceMonthApprovalStatus,
				}
				break
			}
		}
	}
	return helper.JsonOK(c, "Dashboard employee", out)
}

// GET /api/u/employees/salary?year=&month=
// Gaji bulanan = total hours_worked bulan itu × tarif per jam.
func (ctrl *EmployeeController) Salary(c *fiber.Ctx) error {
	code := helper.GetEmployeeID(c)
	if code == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak membawa employee_id")
	}

	now := time.Now()
	year, _ := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter month harus 1..12")
	}

	agg := attService.NewAttendanceService(ctrl.DB)
	yr, err := agg.GetYear(code, year)
	if err != nil {
		if errors.Is(err, attService.ErrYearNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data absensi tahun tersebut belum ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalHours float64
	for i := range yr.Months {
		if yr.Months[i].AttendanceMonthMonth != month {
			continue
		}
		for _, d := range yr.Months[i].Days {
			if d.AttendanceDayHoursWorked != nil {
				totalHours += *d.AttendanceDayHoursWorked
			}
		}
	}
	totalHours = attService.RoundHours(totalHours)

	return helper.JsonOK(c, "Perhitungan gaji bulanan", fiber.Map{
		"employee_code": code,
		"year":          year,
		"month":         month,
		"total_hours":   totalHours,
		"hourly_rate":   ctrl.Cfg.HourlyRate,
		"salary":        attService.RoundHours(totalHours * ctrl.Cfg.HourlyRate),
	})
}
