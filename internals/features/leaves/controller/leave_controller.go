package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trackzone_backend/internals/constants"
	"trackzone_backend/internals/features/leaves/dto"
	"trackzone_backend/internals/features/leaves/model"
	"trackzone_backend/internals/features/leaves/service"
	notifModel "trackzone_backend/internals/features/notifications/model"
	notifService "trackzone_backend/internals/features/notifications/service"
	helper "trackzone_backend/internals/helpers"
)

type LeaveController struct {
	DB       *gorm.DB
	Service  *service.LeaveService
	Notifier *notifService.NotificationService
}

func NewLeaveController(db *gorm.DB, notifier *notifService.NotificationService) *LeaveController {
	return &LeaveController{
		DB:       db,
		Service:  service.NewLeaveService(db),
		Notifier: notifier,
	}
}

var validate = validator.New()

// POST /api/u/leaves
func (ctrl *LeaveController) Submit(c *fiber.Ctx) error {
	code := helper.GetEmployeeID(c)

	var req dto.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	leave, err := ctrl.Service.Submit(code, start, end, req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrLeaveInvalidRange) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Pengajuan cuti terkirim", leave)
}

// GET /api/u/leaves
func (ctrl *LeaveController) ListMine(c *fiber.Ctx) error {
	code := helper.GetEmployeeID(c)

	var rows []model.LeaveRequestModel
	if err := ctrl.DB.
		Where("leave_request_employee_id = ?", code).
		Order("leave_request_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Pengajuan cuti kamu", rows)
}

// GET /api/a/leaves?status=
func (ctrl *LeaveController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.LeaveRequestModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("leave_request_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []model.LeaveRequestModel
	if err := q.Order("leave_request_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Daftar pengajuan cuti", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/a/leaves/:id
// Approve otomatis menulis day record Leave ke rekap absensi.
func (ctrl *LeaveController) Decide(c *fiber.Ctx) error {
	var req dto.DecideLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	leave, err := ctrl.Service.Decide(c.Params("id"), req.Status, req.AdminNotes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeaveNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrLeaveAlreadyDecided):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	if ctrl.Notifier != nil {
		go func(code, status string) {
			verdict := "disetujui"
			if status == constants.LeaveRejected {
				verdict = "ditolak"
			}
			body := fmt.Sprintf("Pengajuan cuti kamu %s", verdict)
			_, _ = ctrl.Notifier.Announce(notifModel.TypeLeave, "Keputusan cuti", body, []string{code})
		}(leave.LeaveRequestEmployeeID, leave.LeaveRequestStatus)
	}
	return helper.JsonUpdated(c, "Pengajuan cuti diputuskan", leave)
}
