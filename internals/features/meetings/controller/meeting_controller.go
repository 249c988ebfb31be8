package controller

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"trackzone_backend/internals/features/meetings/dto"
	"trackzone_backend/internals/features/meetings/model"
	notifModel "trackzone_backend/internals/features/notifications/model"
	notifService "trackzone_backend/internals/features/notifications/service"
	helper "trackzone_backend/internals/helpers"
)

type MeetingController struct {
	DB       *gorm.DB
	Notifier *notifService.NotificationService
}

func NewMeetingController(db *gorm.DB, notifier *notifService.NotificationService) *MeetingController {
	return &MeetingController{DB: db, Notifier: notifier}
}

var validate = validator.New()

// POST /api/a/meetings
func (ctrl *MeetingController) Schedule(c *fiber.Ctx) error {
	var req dto.ScheduleMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "starts_at harus RFC3339")
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ends_at harus RFC3339")
	}
	if !endsAt.After(startsAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "ends_at harus setelah starts_at")
	}

	meeting := model.MeetingModel{
		MeetingTitle:        req.Title,
		MeetingNotes:        req.Notes,
		MeetingStartsAt:     startsAt,
		MeetingEndsAt:       endsAt,
		MeetingLocation:     req.Location,
		MeetingParticipants: req.Participants,
	}
	if err := ctrl.DB.Create(&meeting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if ctrl.Notifier != nil {
		go func(title string, at time.Time, participants []string) {
			body := fmt.Sprintf("Meeting %q dijadwalkan %s", title, at.Format("02 Jan 15:04"))
			_, _ = ctrl.Notifier.Announce(notifModel.TypeMeeting, "Meeting baru", body, participants)
		}(meeting.MeetingTitle, meeting.MeetingStartsAt, meeting.MeetingParticipants)
	}
	return helper.JsonCreated(c, "Meeting berhasil dijadwalkan", meeting)
}

// GET /api/a/meetings
func (ctrl *MeetingController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MeetingModel{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []model.MeetingModel
	if err := q.Order("meeting_starts_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Daftar meeting", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/meetings
// Meeting mendatang yang menyertakan employee login.
func (ctrl *MeetingController) ListMine(c *fiber.Ctx) error {
	code := helper.GetEmployeeID(c)

	var rows []model.MeetingModel
	if err := ctrl.DB.
		Where("? = ANY(meeting_participants) AND meeting_is_cancelled = ? AND meeting_ends_at >= ?",
			code, false, time.Now()).
		Order("meeting_starts_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Meeting kamu", rows)
}

// DELETE /api/a/meetings/:id  (cancel, bukan hapus)
func (ctrl *MeetingController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID meeting tidak valid")
	}

	var meeting model.MeetingModel
	if err := ctrl.DB.Where("meeting_id = ?", id).First(&meeting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Meeting tidak ditemukan")
	}
	if err := ctrl.DB.Model(&meeting).
		Update("meeting_is_cancelled", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if ctrl.Notifier != nil {
		go func(title string, participants []string) {
			body := fmt.Sprintf("Meeting %q dibatalkan", title)
			_, _ = ctrl.Notifier.Announce(notifModel.TypeMeeting, "Meeting dibatalkan", body, participants)
		}(meeting.MeetingTitle, meeting.MeetingParticipants)
	}
	return helper.JsonDeleted(c, "Meeting dibatalkan", fiber.Map{"id": meeting.MeetingID})
}
