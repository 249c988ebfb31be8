package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trackzone_backend/internals/configs"
	"trackzone_backend/internals/constants"
	leaveModel "trackzone_backend/internals/features/leaves/model"
	"trackzone_backend/internals/features/users/employee/dto"
	"trackzone_backend/internals/features/users/employee/model"
	helper "trackzone_backend/internals/helpers"
)

type EmployeeController struct {
	DB  *gorm.DB
	Cfg configs.AttendanceConfig
}

func NewEmployeeController(db *gorm.DB, cfg configs.AttendanceConfig) *EmployeeController {
	return &EmployeeController{DB: db, Cfg: cfg}
}

var validate = validator.New()

// POST /api/a/employees  (multipart; "photo" opsional)
func (ctrl *EmployeeController) Register(c *fiber.Ctx) error {
	var req dto.RegisterEmployeeRequest
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

	emp := model.EmployeeModel{
		EmployeeCode:     req.EmployeeCode,
		EmployeeName:     req.Name,
		EmployeeEmail:    req.Email,
		EmployeePassword: string(hashed),
	}
	if req.Phone != "" {
		emp.EmployeePhone = &req.Phone
	}
	if req.Designation != "" {
		emp.EmployeeDesignation = &req.Designation
	}

	// foto opsional — gagal upload tidak membatalkan registrasi
	if fh, ferr := c.FormFile("photo"); ferr == nil && fh != nil {
		if url, uerr := helper.UploadImageToSupabase("employees", fh); uerr == nil {
			emp.EmployeePhotoURL = &url
		} else {
			log.Printf("[EMPLOYEE] upload foto gagal (code=%s): %v", req.EmployeeCode, uerr)
		}
	}

	if err := ctrl.DB.Create(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Employee code atau email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	go func(name, email string) {
		body := fmt.Sprintf("<p>Halo %s,</p><p>Akun TrackZone kamu sudah aktif. Silakan login dengan email ini.</p>", name)
		if err := helper.SendMail(email, "Selamat datang di TrackZone", body); err != nil {
			log.Printf("[EMPLOYEE] email welcome gagal terkirim ke %s: %v", email, err)
		}
	}(emp.EmployeeName, emp.EmployeeEmail)

	return helper.JsonCreated(c, "Employee berhasil didaftarkan", dto.ToEmployeeResponse(&emp))
}

// GET /api/a/employees
func (ctrl *EmployeeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EmployeeModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(employee_name) LIKE ? OR LOWER(employee_code) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EmployeeModel
	if err := q.Order("employee_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.EmployeeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToEmployeeResponse(&rows[i]))
	}
	return helper.JsonList(c, "Daftar employee berhasil diambil", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/employees/:code
func (ctrl *EmployeeController) GetByCode(c *fiber.Ctx) error {
	emp, err := ctrl.findByCode(c.Params("code"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail employee berhasil diambil", dto.ToEmployeeResponse(emp))
}

// PUT /api/a/employees/:code
func (ctrl *EmployeeController) Update(c *fiber.Ctx) error {
	emp, err := ctrl.findByCode(c.Params("code"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee tidak ditemukan")
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["employee_name"] = *req.Name
	}
	if req.Phone != nil {
		updates["employee_phone"] = *req.Phone
	}
	if req.Designation != nil {
		updates["employee_designation"] = *req.Designation
	}
	if req.IsActive != nil {
		updates["employee_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.Model(emp).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Employee berhasil diperbarui", dto.ToEmployeeResponse(emp))
}

// DELETE /api/a/employees/:code  (soft delete)
// Cuti yang masih pending ikut ditolak supaya tidak menggantung.
func (ctrl *EmployeeController) Delete(c *fiber.Ctx) error {
	emp, err := ctrl.findByCode(c.Params("code"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee tidak ditemukan")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&leaveModel.LeaveRequestModel{}).
			Where("leave_request_employee_id = ? AND leave_request_status = ?",
				emp.EmployeeCode, constants.LeavePending).
			Update("leave_request_status", constants.LeaveRejected).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if err := tx.Delete(emp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Employee berhasil dihapus", fiber.Map{"employee_code": emp.EmployeeCode})
}

// GET /api/u/employees/me
func (ctrl *EmployeeController) Me(c *fiber.Ctx) error {
	emp, err := ctrl.findByCode(helper.GetEmployeeID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee tidak ditemukan")
	}
	return helper.JsonOK(c, "Profil employee", dto.ToEmployeeResponse(emp))
}

// POST /api/u/employees/fingerprint
// Enrol fingerprint: simpan hash bcrypt dari sample, bukan sample mentah.
func (ctrl *EmployeeController) RegisterFingerprint(c *fiber.Ctx) error {
	emp, err := ctrl.findByCode(helper.GetEmployeeID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee tidak ditemukan")
	}

	var req dto.RegisterFingerprintRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Sample), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses fingerprint")
	}
	if err := ctrl.DB.Model(emp).
		Update("employee_fingerprint_hash", string(hashed)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Fingerprint berhasil didaftarkan", nil)
}

func (ctrl *EmployeeController) findByCode(code string) (*model.EmployeeModel, error) {
	var emp model.EmployeeModel
	if err := ctrl.DB.Where("employee_code = ?", code).First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}
