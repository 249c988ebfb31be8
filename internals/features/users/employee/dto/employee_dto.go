package dto

import (
	"trackzone_backend/internals/features/users/employee/model"
)

// ================== REQUEST ==================

// RegisterEmployeeRequest dikirim multipart (field "photo" opsional).
type RegisterEmployeeRequest struct {
	EmployeeCode string `json:"employee_code" form:"employee_code" validate:"required,min=3,max=32"`
	Name         string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" form:"email" validate:"required,email"`
	Password     string `json:"password" form:"password" validate:"required,min=8"`
	Phone        string `json:"phone" form:"phone" validate:"omitempty,min=6,max=25"`
	Designation  string `json:"designation" form:"designation" validate:"omitempty,max=80"`
}

type UpdateEmployeeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,min=6,max=25"`
	Designation *string `json:"designation" validate:"omitempty,max=80"`
	IsActive    *bool   `json:"is_active"`
}

type RegisterFingerprintRequest struct {
	Sample string `json:"sample" validate:"required,min=8"`
}

// ================== RESPONSE ==================

type EmployeeResponse struct {
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	PhotoURL     *string `json:"photo_url,omitempty"`
	HasFinger    bool    `json:"fingerprint_enrolled"`
	IsActive     bool    `json:"is_active"`
}

func ToEmployeeResponse(m *model.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		EmployeeCode: m.EmployeeCode,
		Name:         m.EmployeeName,
		Email:        m.EmployeeEmail,
		Phone:        m.EmployeePhone,
		Designation:  m.EmployeeDesignation,
		PhotoURL:     m.EmployeePhotoURL,
		HasFinger:    m.EmployeeFingerprintHash != nil && *m.EmployeeFingerprintHash != "",
		IsActive:     m.EmployeeIsActive,
	}
}
