package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"trackzone_backend/internals/constants"
	notifModel "trackzone_backend/internals/features/notifications/model"
	notifService "trackzone_backend/internals/features/notifications/service"
	"trackzone_backend/internals/features/tasks/dto"
	"trackzone_backend/internals/features/tasks/model"
	empModel "trackzone_backend/internals/features/users/employee/model"
	helper "trackzone_backend/internals/helpers"
)

type TaskController struct {
	DB       *gorm.DB
	Notifier *notifService.NotificationService
}

func NewTaskController(db *gorm.DB, notifier *notifService.NotificationService) *TaskController {
	return &TaskController{DB: db, Notifier: notifier}
}

var validate = validator.New()

// POST /api/a/tasks
func (ctrl *TaskController) Assign(c *fiber.Ctx) error {
	var req dto.AssignTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var emp empModel.EmployeeModel
	if err := ctrl.DB.Where("employee_code = ?", req.EmployeeCode).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	task := model.TaskModel{
		TaskEmployeeID:  req.EmployeeCode,
		TaskTitle:       req.Title,
		TaskDescription: req.Description,
		TaskStatus:      constants.TaskPending,
	}
	if req.DueDate != "" {
		due, _ := time.Parse("2006-01-02", req.DueDate)
		task.TaskDueDate = &due
	}
	if err := ctrl.DB.Create(&task).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if ctrl.Notifier != nil {
		go func(code, title string) {
			body := fmt.Sprintf("Tugas baru: %s", title)
			_, _ = ctrl.Notifier.Announce(notifModel.TypeTask, "Tugas baru", body, []string{code})
		}(req.EmployeeCode, req.Title)
	}
	return helper.JsonCreated(c, "Tugas berhasil dibuat", task)
}

// GET /api/a/tasks?employee=&status=
func (ctrl *TaskController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TaskModel{})
	if code := strings.TrimSpace(c.Query("employee")); code != "" {
		q = q.Where("task_employee_id = ?", code)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("task_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []model.TaskModel
	if err := q.Order("task_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Daftar tugas", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/tasks
func (ctrl *TaskController) ListMine(c *fiber.Ctx) error {
	code := helper.GetEmployeeID(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TaskModel{}).Where("task_employee_id = ?", code)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []model.TaskModel
	if err := q.Order("task_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Tugas kamu", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/u/tasks/:id/status
func (ctrl *TaskController) UpdateStatus(c *fiber.Ctx) error {
	code := helper.GetEmployeeID(c)
	task, err := ctrl.findByID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
	}
	if task.TaskEmployeeID != code {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan tugas kamu")
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctrl.DB.Model(task).Update("task_status", req.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	task.TaskStatus = req.Status
	return helper.JsonUpdated(c, "Status tugas diperbarui", task)
}

// POST /api/u/tasks/:id/comments
func (ctrl *TaskController) AddComment(c *fiber.Ctx) error {
	code := helper.GetEmployeeID(c)
	role := helper.GetRole(c)

	task, err := ctrl.findByID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
	}
	if role != constants.RoleAdmin && task.TaskEmployeeID != code {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan tugas kamu")
	}

	var req dto.AddTaskCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	author := code
	if role == constants.RoleAdmin {
		author = "admin"
	}

	var comments []model.TaskComment
	if len(task.TaskComments) > 0 {
		if err := sonic.Unmarshal(task.TaskComments, &comments); err != nil {
			comments = nil
		}
	}
	comments = append(comments, model.TaskComment{
		Author: author,
		Text:   req.Text,
		At:     time.Now(),
	})
	raw, err := sonic.Marshal(comments)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.Model(task).
		Update("task_comments", datatypes.JSON(raw)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	task.TaskComments = datatypes.JSON(raw)
	return helper.JsonUpdated(c, "Komentar ditambahkan", task)
}

func (ctrl *TaskController) findByID(raw string) (*model.TaskModel, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	var task model.TaskModel
	if err := ctrl.DB.Where("task_id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}
