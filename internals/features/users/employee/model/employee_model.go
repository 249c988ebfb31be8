package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeModel: akun karyawan. EmployeeCode ("EMP001") adalah business id
// yang dipakai semua tabel absensi, bukan primary key uuid.
type EmployeeModel struct {
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey" json:"employee_id"`
	EmployeeCode string    `gorm:"column:employee_code;type:varchar(32);not null;uniqueIndex:uq_employees_code" json:"employee_code"`

	EmployeeName        string  `gorm:"column:employee_name;type:varchar(100);not null" json:"employee_name"`
	EmployeeEmail       string  `gorm:"column:employee_email;type:varchar(120);not null;uniqueIndex:uq_employees_email" json:"employee_email"`
	EmployeePassword    string  `gorm:"column:employee_password;type:varchar(255);not null" json:"-"`
	EmployeePhone       *string `gorm:"column:employee_phone;type:varchar(25)" json:"employee_phone,omitempty"`
	EmployeeDesignation *string `gorm:"column:employee_designation;type:varchar(80)" json:"employee_designation,omitempty"`
	EmployeePhotoURL    *string `gorm:"column:employee_photo_url;type:text" json:"employee_photo_url,omitempty"`

	// hash bcrypt dari sample fingerprint; nil = belum enrol
	EmployeeFingerprintHash *string `gorm:"column:employee_fingerprint_hash;type:varchar(255)" json:"-"`

	EmployeeOTP          *string    `gorm:"column:employee_otp;type:varchar(12)" json:"-"`
	EmployeeOTPExpiresAt *time.Time `gorm:"column:employee_otp_expires_at" json:"-"`

	EmployeeIsActive bool `gorm:"column:employee_is_active;not null;default:true" json:"employee_is_active"`

	EmployeeCreatedAt time.Time      `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
	EmployeeUpdatedAt time.Time      `gorm:"column:employee_updated_at;autoUpdateTime" json:"employee_updated_at"`
	EmployeeDeletedAt gorm.DeletedAt `gorm:"column:employee_deleted_at;index" json:"-"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}

func (m *EmployeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.EmployeeID == uuid.Nil {
		m.EmployeeID = uuid.New()
	}
	return nil
}
