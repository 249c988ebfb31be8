package controller

import (
	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"trackzone_backend/internals/features/notifications/dto"
	"trackzone_backend/internals/features/notifications/model"
	"trackzone_backend/internals/features/notifications/service"
	helper "trackzone_backend/internals/helpers"
)

type NotificationController struct {
	DB      *gorm.DB
	Service *service.NotificationService
}

func NewNotificationController(db *gorm.DB, svc *service.NotificationService) *NotificationController {
	return &NotificationController{DB: db, Service: svc}
}

var validate = validator.New()

// POST /api/a/notifications
// Kirim pengumuman manual; recipients kosong = broadcast.
func (ctrl *NotificationController) Send(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	n, err := ctrl.Service.Announce(req.Type, req.Title, req.Body, req.Recipients)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Notifikasi terkirim", n)
}

// GET /api/u/notifications
// Notifikasi untuk employee login: broadcast + yang menyebut dirinya.
func (ctrl *NotificationController) ListMine(c *fiber.Ctx) error {
	code := helper.GetEmployeeID(c)
	paging := helper.ResolvePaging(c, 20, 100)

	var rows []model.NotificationModel
	if err := ctrl.DB.
		Order("notification_created_at DESC").
		Limit(500).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	mine := make([]model.NotificationModel, 0, len(rows))
	for _, n := range rows {
		if len(n.NotificationRecipients) == 0 {
			mine = append(mine, n)
			continue
		}
		var recipients []string
		if err := sonic.Unmarshal(n.NotificationRecipients, &recipients); err != nil {
			continue
		}
		for _, r := range recipients {
			if r == code {
				mine = append(mine, n)
				break
			}
		}
	}

	total := int64(len(mine))
	start := paging.Offset
	if start > len(mine) {
		start = len(mine)
	}
	end := start + paging.Limit
	if end > len(mine) {
		end = len(mine)
	}
	return helper.JsonList(c, "Notifikasi kamu", mine[start:end],
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	code := helper.GetEmployeeID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID notifikasi tidak valid")
	}

	var n model.NotificationModel
	if err := ctrl.DB.Where("notification_id = ?", id).First(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	var readBy []string
	if len(n.NotificationReadBy) > 0 {
		if err := sonic.Unmarshal(n.NotificationReadBy, &readBy); err != nil {
			readBy = nil
		}
	}
	for _, r := range readBy {
		if r == code {
			return helper.JsonOK(c, "Sudah ditandai terbaca", nil)
		}
	}
	readBy = append(readBy, code)

	raw, err := sonic.Marshal(readBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.Model(&n).
		Update("notification_read_by", datatypes.JSON(raw)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Notifikasi ditandai terbaca", nil)
}
