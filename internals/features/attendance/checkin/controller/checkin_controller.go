package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trackzone_backend/internals/configs"
	"trackzone_backend/internals/features/attendance/checkin/dto"
	"trackzone_backend/internals/features/attendance/checkin/service"
	helper "trackzone_backend/internals/helpers"
)

type CheckinController struct {
	DB      *gorm.DB
	Service *service.CheckinService
}

func NewCheckinController(db *gorm.DB, cfg configs.AttendanceConfig, notifier service.Notifier) *CheckinController {
	return &CheckinController{
		DB:      db,
		Service: service.NewCheckinService(db, cfg, notifier),
	}
}

var validate = validator.New()

// POST /api/u/checkin
func (ctrl *CheckinController) CheckIn(c *fiber.Ctx) error {
	employeeCode := helper.GetEmployeeID(c)
	if employeeCode == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak membawa employee_id")
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ev, err := ctrl.Service.CheckIn(employeeCode, req.Lat, req.Lon)
	if err != nil {
		return checkinErrToJSON(c, err)
	}
	return helper.JsonCreated(c, "Check-in berhasil", dto.ToCheckInEventResponse(ev))
}

// POST /api/u/checkout
func (ctrl *CheckinController) CheckOut(c *fiber.Ctx) error {
	employeeCode := helper.GetEmployeeID(c)
	if employeeCode == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak membawa employee_id")
	}

	ev, err := ctrl.Service.CheckOut(employeeCode)
	if err != nil {
		return checkinErrToJSON(c, err)
	}
	return helper.JsonOK(c, "Check-out berhasil", dto.ToCheckInEventResponse(ev))
}

// GET /api/u/checkin/today
func (ctrl *CheckinController) Today(c *fiber.Ctx) error {
	employeeCode := helper.GetEmployeeID(c)
	if employeeCode == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak membawa employee_id")
	}

	ev, err := ctrl.Service.TodayEvent(employeeCode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if ev == nil {
		return helper.JsonOK(c, "Belum ada check-in hari ini", nil)
	}
	return helper.JsonOK(c, "Status check-in hari ini", dto.ToCheckInEventResponse(ev))
}

// POST /api/u/checkin/fingerprint/verify
func (ctrl *CheckinController) VerifyFingerprint(c *fiber.Ctx) error {
	employeeCode := helper.GetEmployeeID(c)
	if employeeCode == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak membawa employee_id")
	}

	var req dto.VerifyFingerprintRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctrl.Service.VerifyFingerprint(employeeCode, req.Sample); err != nil {
		return checkinErrToJSON(c, err)
	}
	return helper.JsonOK(c, "Fingerprint terverifikasi", nil)
}

func checkinErrToJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrOutsideWindow):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrOutsideGeofence):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrAlreadyCheckedIn),
		errors.Is(err, service.ErrAlreadyCheckedOut):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotCheckedIn):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrFingerprintMismatch),
		errors.Is(err, service.ErrNoFingerprint):
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmployeeNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
