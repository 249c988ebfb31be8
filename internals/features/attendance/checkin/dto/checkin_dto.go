package dto

import (
	"time"

	"trackzone_backend/internals/features/attendance/checkin/model"
)

// ================== REQUEST ==================

type CheckInRequest struct {
	Lat float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon float64 `json:"lon" validate:"required,min=-180,max=180"`
}

type VerifyFingerprintRequest struct {
	Sample string `json:"sample" validate:"required,min=8"`
}

// ================== RESPONSE ==================

type CheckInEventResponse struct {
	Date         string   `json:"date"`
	Status       string   `json:"status"`
	CheckInTime  *string  `json:"check_in_time,omitempty"`
	CheckOutTime *string  `json:"check_out_time,omitempty"`
	HoursWorked  *float64 `json:"hours_worked,omitempty"`
	IsAuto       bool     `json:"is_auto"`
	Verified     bool     `json:"verified"`
}

func ToCheckInEventResponse(ev *model.CheckInEventModel) CheckInEventResponse {
	fmtTS := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format(time.RFC3339)
		return &s
	}
	return CheckInEventResponse{
		Date:         ev.CheckInEventDate.Format("2006-01-02"),
		Status:       ev.CheckInEventStatus,
		CheckInTime:  fmtTS(ev.CheckInEventCheckInTime),
		CheckOutTime: fmtTS(ev.CheckInEventCheckOutTime),
		HoursWorked:  ev.CheckInEventHoursWorked,
		IsAuto:       ev.CheckInEventIsAuto,
		Verified:     ev.CheckInEventVerified,
	}
}
