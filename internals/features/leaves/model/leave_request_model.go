package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveRequestModel: pengajuan cuti rentang tanggal inklusif.
type LeaveRequestModel struct {
	LeaveRequestID         uuid.UUID `gorm:"column:leave_request_id;type:uuid;primaryKey" json:"leave_request_id"`
	LeaveRequestEmployeeID string    `gorm:"column:leave_request_employee_id;type:varchar(32);not null;index:idx_leave_requests_employee" json:"leave_request_employee_id"`

	LeaveRequestStartDate time.Time `gorm:"column:leave_request_start_date;type:date;not null" json:"leave_request_start_date"`
	LeaveRequestEndDate   time.Time `gorm:"column:leave_request_end_date;type:date;not null" json:"leave_request_end_date"`
	LeaveRequestReason    string    `gorm:"column:leave_request_reason;type:text;not null" json:"leave_request_reason"`

	LeaveRequestStatus     string  `gorm:"column:leave_request_status;type:varchar(12);not null;default:'pending';index" json:"leave_request_status"`
	LeaveRequestAdminNotes *string `gorm:"column:leave_request_admin_notes;type:text" json:"leave_request_admin_notes,omitempty"`

	LeaveRequestCreatedAt time.Time `gorm:"column:leave_request_created_at;autoCreateTime" json:"leave_request_created_at"`
	LeaveRequestUpdatedAt time.Time `gorm:"column:leave_request_updated_at;autoUpdateTime" json:"leave_request_updated_at"`
}

func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}

func (m *LeaveRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.LeaveRequestID == uuid.Nil {
		m.LeaveRequestID = uuid.New()
	}
	return nil
}
