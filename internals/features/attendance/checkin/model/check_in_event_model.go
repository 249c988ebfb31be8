package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckInEventModel: satu event per (employee, tanggal). Unique index jadi
// penjaga terakhir terhadap double check-in yang lolos lock aplikasi.
type CheckInEventModel struct {
	CheckInEventID         uuid.UUID `gorm:"column:check_in_event_id;type:uuid;primaryKey" json:"check_in_event_id"`
	CheckInEventEmployeeID string    `gorm:"column:check_in_event_employee_id;type:varchar(32);not null;uniqueIndex:uq_check_in_events_employee_date,priority:1" json:"check_in_event_employee_id"`
	CheckInEventDate       time.Time `gorm:"column:check_in_event_date;type:date;not null;uniqueIndex:uq_check_in_events_employee_date,priority:2" json:"check_in_event_date"`

	CheckInEventCheckInTime  *time.Time `gorm:"column:check_in_event_check_in_time" json:"check_in_event_check_in_time,omitempty"`
	CheckInEventCheckOutTime *time.Time `gorm:"column:check_in_event_check_out_time" json:"check_in_event_check_out_time,omitempty"`
	CheckInEventHoursWorked  *float64   `gorm:"column:check_in_event_hours_worked" json:"check_in_event_hours_worked,omitempty"`

	CheckInEventStatus   string `gorm:"column:check_in_event_status;type:varchar(16);not null" json:"check_in_event_status"`
	CheckInEventIsAuto   bool   `gorm:"column:check_in_event_is_auto;not null;default:false" json:"check_in_event_is_auto"`
	CheckInEventVerified bool   `gorm:"column:check_in_event_verified;not null;default:false" json:"check_in_event_verified"`

	CheckInEventLat *float64 `gorm:"column:check_in_event_lat" json:"check_in_event_lat,omitempty"`
	CheckInEventLon *float64 `gorm:"column:check_in_event_lon" json:"check_in_event_lon,omitempty"`

	CheckInEventCreatedAt time.Time `gorm:"column:check_in_event_created_at;autoCreateTime" json:"check_in_event_created_at"`
	CheckInEventUpdatedAt time.Time `gorm:"column:check_in_event_updated_at;autoUpdateTime" json:"check_in_event_updated_at"`
}

func (CheckInEventModel) TableName() string {
	return "check_in_events"
}

func (m *CheckInEventModel) BeforeCreate(tx *gorm.DB) error {
	if m.CheckInEventID == uuid.Nil {
		m.CheckInEventID = uuid.New()
	}
	return nil
}
