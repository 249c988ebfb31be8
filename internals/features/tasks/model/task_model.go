package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskModel: tugas per karyawan. Komentar progres disimpan sebagai array
// JSON {author, text, at} — tidak butuh query relasional.
type TaskModel struct {
	TaskID         uuid.UUID `gorm:"column:task_id;type:uuid;primaryKey" json:"task_id"`
	TaskEmployeeID string    `gorm:"column:task_employee_id;type:varchar(32);not null;index:idx_tasks_employee" json:"task_employee_id"`

	TaskTitle       string     `gorm:"column:task_title;type:varchar(120);not null" json:"task_title"`
	TaskDescription string     `gorm:"column:task_description;type:text" json:"task_description"`
	TaskDueDate     *time.Time `gorm:"column:task_due_date;type:date" json:"task_due_date,omitempty"`
	TaskStatus      string     `gorm:"column:task_status;type:varchar(24);not null;default:'Pending'" json:"task_status"`

	TaskComments datatypes.JSON `gorm:"column:task_comments" json:"task_comments,omitempty"`

	TaskCreatedAt time.Time `gorm:"column:task_created_at;autoCreateTime" json:"task_created_at"`
	TaskUpdatedAt time.Time `gorm:"column:task_updated_at;autoUpdateTime" json:"task_updated_at"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

func (m *TaskModel) BeforeCreate(tx *gorm.DB) error {
	if m.TaskID == uuid.Nil {
		m.TaskID = uuid.New()
	}
	return nil
}

// TaskComment: bentuk elemen di kolom task_comments.
type TaskComment struct {
	Author string    `json:"author"`
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
}
