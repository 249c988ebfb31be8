package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeofenceZoneModel: lingkaran area check-in. Boleh lebih dari satu zona
// aktif (kantor cabang); cukup masuk salah satu.
type GeofenceZoneModel struct {
	GeofenceZoneID   uuid.UUID `gorm:"column:geofence_zone_id;type:uuid;primaryKey" json:"geofence_zone_id"`
	GeofenceZoneName string    `gorm:"column:geofence_zone_name;type:varchar(80);not null;uniqueIndex:uq_geofence_zones_name" json:"geofence_zone_name"`

	GeofenceZoneLat     float64 `gorm:"column:geofence_zone_lat;not null" json:"geofence_zone_lat"`
	GeofenceZoneLon     float64 `gorm:"column:geofence_zone_lon;not null" json:"geofence_zone_lon"`
	GeofenceZoneRadiusM float64 `gorm:"column:geofence_zone_radius_m;not null" json:"geofence_zone_radius_m"`

	GeofenceZoneIsActive bool `gorm:"column:geofence_zone_is_active;not null;default:true" json:"geofence_zone_is_active"`

	GeofenceZoneCreatedAt time.Time `gorm:"column:geofence_zone_created_at;autoCreateTime" json:"geofence_zone_created_at"`
	GeofenceZoneUpdatedAt time.Time `gorm:"column:geofence_zone_updated_at;autoUpdateTime" json:"geofence_zone_updated_at"`
}

func (GeofenceZoneModel) TableName() string {
	return "geofence_zones"
}

func (m *GeofenceZoneModel) BeforeCreate(tx *gorm.DB) error {
	if m.GeofenceZoneID == uuid.Nil {
		m.GeofenceZoneID = uuid.New()
	}
	return nil
}
