package dto

type SendNotificationRequest struct {
	Type       string   `json:"type" validate:"required,oneof=checkin checkout announcement leave task meeting"`
	Title      string   `json:"title" validate:"required,min=2,max=120"`
	Body       string   `json:"body" validate:"required,min=2"`
	Recipients []string `json:"recipients" validate:"omitempty,dive,min=3,max=32"`
}
