package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TypeCheckIn      = "checkin"
	TypeCheckOut     = "checkout"
	TypeAnnouncement = "announcement"
	TypeLeave        = "leave"
	TypeTask         = "task"
	TypeMeeting      = "meeting"
)

// NotificationModel: recipients & read_by disimpan sebagai array JSON
// employee_code. recipients kosong = broadcast ke semua.
type NotificationModel struct {
	NotificationID    uuid.UUID `gorm:"column:notification_id;type:uuid;primaryKey" json:"notification_id"`
	NotificationType  string    `gorm:"column:notification_type;type:varchar(20);not null;index" json:"notification_type"`
	NotificationTitle string    `gorm:"column:notification_title;type:varchar(120);not null" json:"notification_title"`
	NotificationBody  string    `gorm:"column:notification_body;type:text;not null" json:"notification_body"`

	NotificationRecipients datatypes.JSON `gorm:"column:notification_recipients" json:"notification_recipients,omitempty"`
	NotificationReadBy     datatypes.JSON `gorm:"column:notification_read_by" json:"notification_read_by,omitempty"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime;index" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}
