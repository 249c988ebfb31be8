package service

import (
	"gorm.io/gorm"

	"trackzone_backend/internals/configs"
	"trackzone_backend/internals/features/geofence/model"
	helper "trackzone_backend/internals/helpers"
)

// DBFence: implementasi FenceChecker berbasis tabel geofence_zones.
// Tabel kosong → fallback ke lingkaran kantor dari env, supaya instalasi
// baru tetap bisa check-in sebelum admin membuat zona.
type DBFence struct {
	DB  *gorm.DB
	Cfg configs.AttendanceConfig
}

func NewDBFence(db *gorm.DB, cfg configs.AttendanceConfig) *DBFence {
	return &DBFence{DB: db, Cfg: cfg}
}

func (f *DBFence) Allows(lat, lon float64) (bool, error) {
	var zones []model.GeofenceZoneModel
	if err := f.DB.Where("geofence_zone_is_active = ?", true).Find(&zones).Error; err != nil {
		return false, err
	}

	if len(zones) == 0 {
		d := helper.DistanceMeters(f.Cfg.OfficeLat, f.Cfg.OfficeLon, lat, lon)
		return d <= f.Cfg.GeofenceRadiusM, nil
	}

	for _, z := range zones {
		if helper.DistanceMeters(z.GeofenceZoneLat, z.GeofenceZoneLon, lat, lon) <= z.GeofenceZoneRadiusM {
			return true, nil
		}
	}
	return false, nil
}
