package controller

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trackzone_backend/internals/configs"
	"trackzone_backend/internals/constants"
	attService "trackzone_backend/internals/features/attendance/attendance/service"
	checkinModel "trackzone_backend/internals/features/attendance/checkin/model"
	"trackzone_backend/internals/features/users/auth/dto"
	adminModel "trackzone_backend/internals/features/users/admin/model"
	empModel "trackzone_backend/internals/features/users/employee/model"
	helper "trackzone_backend/internals/helpers"
)

// masa berlaku OTP reset password
const otpTTL = 3 * time.Minute

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

// POST /api/auth/login
// Login terpadu: email dicari di tabel admin dulu, lalu employee.
// Pesan error sama untuk "tidak ada" dan "password salah".
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	secret := configs.GetEnv("JWT_SECRET")
	if secret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}

	// 1) admin
	var admin adminModel.AdminModel
	err := ctrl.DB.Where("admin_email = ?", req.Email).First(&admin).Error
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(req.Password)) != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		token, terr := helper.IssueToken(secret, admin.AdminID.String(), constants.RoleAdmin, 24*time.Hour, map[string]any{
			"email": admin.AdminEmail,
		})
		if terr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
		}
		setAccessCookie(c, token)
		return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
			AccessToken: token,
			Role:        constants.RoleAdmin,
			Name:        admin.AdminName,
			Email:       admin.AdminEmail,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// 2) employee
	var emp empModel.EmployeeModel
	err = ctrl.DB.Where("employee_email = ?", req.Email).First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !emp.EmployeeIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun employee sudah dinonaktifkan")
	}
	if bcrypt.CompareHashAndPassword([]byte(emp.EmployeePassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, terr := helper.IssueToken(secret, emp.EmployeeID.String(), constants.RoleEmployee, 24*time.Hour, map[string]any{
		"employee_id": emp.EmployeeCode,
		"email":       emp.EmployeeEmail,
	})
	if terr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	enrolled := emp.EmployeeFingerprintHash != nil && *emp.EmployeeFingerprintHash != ""
	verified := false
	if enrolled {
		var ev checkinModel.CheckInEventModel
		derr := ctrl.DB.
			Where("check_in_event_employee_id = ? AND check_in_event_date = ?",
				emp.EmployeeCode, attService.TruncateDay(time.Now())).
			First(&ev).Error
		if derr == nil {
			verified = ev.CheckInEventVerified
		} else if !errors.Is(derr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, derr.Error())
		}
	}

	setAccessCookie(c, token)
	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken:         token,
		Role:                constants.RoleEmployee,
		Name:                emp.EmployeeName,
		Email:               emp.EmployeeEmail,
		EmployeeCode:        emp.EmployeeCode,
		RequiresFingerprint: enrolled && !verified,
		FingerprintVerified: verified,
	})
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	if email := helper.GetUserEmail(c); email != "" {
		log.Printf("[AUTH] logout %s", email)
	}
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// POST /api/auth/password/otp
// Kirim OTP 6 digit ke email employee; berlaku 3 menit. Respon selalu
// sama supaya endpoint tidak bisa dipakai menebak email terdaftar.
func (ctrl *AuthController) RequestPasswordOTP(c *fiber.Ctx) error {
	var req dto.RequestOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	neutral := func() error {
		return helper.JsonOK(c, "Jika email terdaftar, OTP sudah dikirim", nil)
	}

	var emp empModel.EmployeeModel
	err := ctrl.DB.Where("employee_email = ?", req.Email).First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return neutral()
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	otp, err := generateOTP()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat OTP")
	}
	expires := time.Now().Add(otpTTL)
	if err := ctrl.DB.Model(&emp).Updates(map[string]any{
		"employee_otp":            otp,
		"employee_otp_expires_at": expires,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	go func(email, otp string) {
		body := fmt.Sprintf("<p>OTP reset password kamu: <b>%s</b></p><p>Berlaku 3 menit.</p>", otp)
		if err := helper.SendMail(email, "OTP Reset Password TrackZone", body); err != nil {
			log.Printf("[AUTH] OTP gagal terkirim ke %s: %v", email, err)
		}
	}(emp.EmployeeEmail, otp)

	return neutral()
}

// POST /api/auth/password/reset
func (ctrl *AuthController) ResetPasswordWithOTP(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var emp empModel.EmployeeModel
	err := ctrl.DB.Where("employee_email = ?", req.Email).First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "OTP tidak valid atau kedaluwarsa")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if emp.EmployeeOTP == nil || emp.EmployeeOTPExpiresAt == nil ||
		*emp.EmployeeOTP != req.OTP || time.Now().After(*emp.EmployeeOTPExpiresAt) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "OTP tidak valid atau kedaluwarsa")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctrl.DB.Model(&emp).Updates(map[string]any{
		"employee_password":       string(hashed),
		"employee_otp":            nil,
		"employee_otp_expires_at": nil,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Password berhasil direset", nil)
}

func setAccessCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
