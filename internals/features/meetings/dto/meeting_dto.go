package dto

type ScheduleMeetingRequest struct {
	Title        string   `json:"title" validate:"required,min=2,max=120"`
	Notes        string   `json:"notes" validate:"omitempty"`
	StartsAt     string   `json:"starts_at" validate:"required"` // RFC3339
	EndsAt       string   `json:"ends_at" validate:"required"`   // RFC3339
	Location     string   `json:"location" validate:"omitempty,max=120"`
	Participants []string `json:"participants" validate:"required,min=1,dive,min=3,max=32"`
}
