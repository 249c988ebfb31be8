package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MeetingModel: jadwal meeting; participants = array employee_code
// (pq.StringArray → kolom text[] Postgres).
type MeetingModel struct {
	MeetingID    uuid.UUID `gorm:"column:meeting_id;type:uuid;primaryKey" json:"meeting_id"`
	MeetingTitle string    `gorm:"column:meeting_title;type:varchar(120);not null" json:"meeting_title"`
	MeetingNotes string    `gorm:"column:meeting_notes;type:text" json:"meeting_notes"`

	MeetingStartsAt time.Time `gorm:"column:meeting_starts_at;not null;index" json:"meeting_starts_at"`
	MeetingEndsAt   time.Time `gorm:"column:meeting_ends_at;not null" json:"meeting_ends_at"`
	MeetingLocation string    `gorm:"column:meeting_location;type:varchar(120)" json:"meeting_location"`

	MeetingParticipants pq.StringArray `gorm:"column:meeting_participants;type:text[]" json:"meeting_participants"`

	MeetingIsCancelled bool `gorm:"column:meeting_is_cancelled;not null;default:false" json:"meeting_is_cancelled"`

	MeetingCreatedAt time.Time `gorm:"column:meeting_created_at;autoCreateTime" json:"meeting_created_at"`
	MeetingUpdatedAt time.Time `gorm:"column:meeting_updated_at;autoUpdateTime" json:"meeting_updated_at"`
}

func (MeetingModel) TableName() string {
	return "meetings"
}

func (m *MeetingModel) BeforeCreate(tx *gorm.DB) error {
	if m.MeetingID == uuid.Nil {
		m.MeetingID = uuid.New()
	}
	return nil
}
