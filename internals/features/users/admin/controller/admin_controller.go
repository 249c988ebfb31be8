package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trackzone_backend/internals/constants"
	attService "trackzone_backend/internals/features/attendance/attendance/service"
	checkinModel "trackzone_backend/internals/features/attendance/checkin/model"
	leaveModel "trackzone_backend/internals/features/leaves/model"
	"trackzone_backend/internals/features/users/admin/dto"
	"trackzone_backend/internals/features/users/admin/model"
	empModel "trackzone_backend/internals/features/users/employee/model"
	helper "trackzone_backend/internals/helpers"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

var validate = validator.New()

// POST /api/auth/admin/register
// Bootstrap: admin pertama boleh daftar tanpa token; setelahnya hanya
// admin login yang boleh menambah admin lain.
func (ctrl *AdminController) Register(c *fiber.Ctx) error {
	var count int64
	if err := ctrl.DB.Model(&model.AdminModel{}).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 && helper.GetRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya admin yang boleh menambah admin baru")
	}

	var req dto.RegisterAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	admin := model.AdminModel{
		AdminName:     req.Name,
		AdminEmail:    req.Email,
		AdminPassword: string(hashed),
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email admin sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Admin berhasil didaftarkan", dto.ToAdminResponse(&admin))
}

// GET /api/a/dashboard
// Ringkasan operasional: headcount, kehadiran hari ini, cuti pending.
func (ctrl *AdminController) DashboardOverview(c *fiber.Ctx) error {
	today := attService.TruncateDay(time.Now())

	var totalEmployees int64
	if err := ctrl.DB.Model(&empModel.EmployeeModel{}).
		Where("employee_is_active = ?", true).
		Count(&totalEmployees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var checkedIn int64
	if err := ctrl.DB.Model(&checkinModel.CheckInEventModel{}).
		Where("check_in_event_date = ? AND check_in_event_check_in_time IS NOT NULL", today).
		Count(&checkedIn).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var stillOpen int64
	if err := ctrl.DB.Model(&checkinModel.CheckInEventModel{}).
		Where("check_in_event_date = ? AND check_in_event_check_in_time IS NOT NULL AND check_in_event_check_out_time IS NULL", today).
		Count(&stillOpen).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var pendingLeaves int64
	if err := ctrl.DB.Model(&leaveModel.LeaveRequestModel{}).
		Where("leave_request_status = ?", constants.LeavePending).
		Count(&pendingLeaves).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Dashboard admin", fiber.Map{
		"date":            today.Format("2006-01-02"),
		"total_employees": totalEmployees,
		"checked_in":      checkedIn,
		"still_open":      stillOpen,
		"not_checked_in":  totalEmployees - checkedIn,
		"pending_leaves":  pendingLeaves,
	})
}
