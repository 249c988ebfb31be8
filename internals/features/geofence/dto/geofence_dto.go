package dto

import "trackzone_backend/internals/features/geofence/model"

type CreateGeofenceZoneRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=80"`
	Lat     float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon     float64 `json:"lon" validate:"required,min=-180,max=180"`
	RadiusM float64 `json:"radius_m" validate:"required,gt=0"`
}

type UpdateGeofenceZoneRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=2,max=80"`
	Lat      *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon      *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
	RadiusM  *float64 `json:"radius_m" validate:"omitempty,gt=0"`
	IsActive *bool    `json:"is_active"`
}

type GeofenceZoneResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	RadiusM  float64 `json:"radius_m"`
	IsActive bool    `json:"is_active"`
}

func ToGeofenceZoneResponse(m *model.GeofenceZoneModel) GeofenceZoneResponse {
	return GeofenceZoneResponse{
		ID:       m.GeofenceZoneID.String(),
		Name:     m.GeofenceZoneName,
		Lat:      m.GeofenceZoneLat,
		Lon:      m.GeofenceZoneLon,
		RadiusM:  m.GeofenceZoneRadiusM,
		IsActive: m.GeofenceZoneIsActive,
	}
}
