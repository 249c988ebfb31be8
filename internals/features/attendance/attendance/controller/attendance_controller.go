package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trackzone_backend/internals/features/attendance/attendance/dto"
	"trackzone_backend/internals/features/attendance/attendance/service"
	helper "trackzone_backend/internals/helpers"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:      db,
		Service: service.NewAttendanceService(db),
	}
}

var validate = validator.New()

// resolveEmployeeID: route admin membawa :employee_id di path, route /me
// milik employee mengambilnya dari claim token.
func resolveEmployeeID(c *fiber.Ctx) string {
	if id := c.Params("employee_id"); id != "" {
		return id
	}
	return helper.GetEmployeeID(c)
}

func parseYear(c *fiber.Ctx) (int, error) {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 2000 || year > 2200 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Parameter year tidak valid")
	}
	return year, nil
}

func parseMonth(c *fiber.Ctx) (int, error) {
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Parameter month harus 1..12")
	}
	return month, nil
}

// GET /api/a/attendance/:employee_id/:year/:month
// Detail satu bulan: daftar hari + counter bulanan.
func (ctrl *AttendanceController) GetMonth(c *fiber.Ctx) error {
	employeeID := resolveEmployeeID(c)
	year, err := parseYear(c)
	if err != nil {
		return err
	}
	month, err := parseMonth(c)
	if err != nil {
		return err
	}

	yr, err := ctrl.Service.GetYear(employeeID, year)
	if err != nil {
		if errors.Is(err, service.ErrYearNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data absensi tahun tersebut belum ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	for i := range yr.Months {
		if yr.Months[i].AttendanceMonthMonth == month {
			return helper.JsonOK(c, "Data absensi bulan berhasil diambil", dto.ToMonthResponse(&yr.Months[i]))
		}
	}
	return helper.JsonError(c, fiber.StatusNotFound, "Belum ada absensi untuk bulan tersebut")
}

// GET /api/a/attendance/:employee_id/:year
// Rekap tahunan + seluruh bulan.
func (ctrl *AttendanceController) GetYear(c *fiber.Ctx) error {
	employeeID := resolveEmployeeID(c)
	year, err := parseYear(c)
	if err != nil {
		return err
	}

	yr, err := ctrl.Service.GetYear(employeeID, year)
	if err != nil {
		if errors.Is(err, service.ErrYearNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data absensi tahun tersebut belum ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	months := make([]dto.MonthResponse, 0, len(yr.Months))
	for i := range yr.Months {
		months = append(months, dto.ToMonthResponse(&yr.Months[i]))
	}
	return helper.JsonOK(c, "Data absensi tahunan berhasil diambil", fiber.Map{
		"summary": dto.ToYearSummaryResponse(yr),
		"months":  months,
	})
}

// GET /api/a/attendance/:employee_id/:year/summary
func (ctrl *AttendanceController) GetYearSummary(c *fiber.Ctx) error {
	employeeID := resolveEmployeeID(c)
	year, err := parseYear(c)
	if err != nil {
		return err
	}

	yr, err := ctrl.Service.GetYear(employeeID, year)
	if err != nil {
		if errors.Is(err, service.ErrYearNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data absensi tahun tersebut belum ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Rekap absensi tahunan berhasil diambil", dto.ToYearSummaryResponse(yr))
}

// PUT /api/a/attendance/:employee_id/:year/:month/day
// Koreksi admin: status / jam untuk satu tanggal, counter dihitung ulang.
func (ctrl *AttendanceController) UpdateDay(c *fiber.Ctx) error {
	employeeID := resolveEmployeeID(c)
	year, err := parseYear(c)
	if err != nil {
		return err
	}
	month, err := parseMonth(c)
	if err != nil {
		return err
	}

	var req dto.UpdateDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	date := time.Date(year, time.Month(month), req.Day, 0, 0, 0, 0, time.UTC)
	if int(date.Month()) != month {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak ada di bulan tersebut")
	}

	parseTS := func(s *string) (*time.Time, error) {
		if s == nil || *s == "" {
			return nil, nil
		}
		t, err := time.Parse(time.RFC3339, *s)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
	checkIn, err := parseTS(req.CheckInTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "check_in_time harus RFC3339")
	}
	checkOut, err := parseTS(req.CheckOutTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "check_out_time harus RFC3339")
	}

	yr, err := ctrl.Service.UpdateDay(employeeID, year, date, req.Status, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrYearNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Data absensi tahun tersebut belum ada")
		case errors.Is(err, service.ErrInvalidInterval):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	for i := range yr.Months {
		if yr.Months[i].AttendanceMonthMonth == month {
			return helper.JsonUpdated(c, "Absensi harian berhasil dikoreksi", dto.ToMonthResponse(&yr.Months[i]))
		}
	}
	return helper.JsonUpdated(c, "Absensi harian berhasil dikoreksi", dto.ToYearSummaryResponse(yr))
}
