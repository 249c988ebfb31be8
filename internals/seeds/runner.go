package seeds

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trackzone_backend/internals/configs"
	geofenceModel "trackzone_backend/internals/features/geofence/model"
	adminModel "trackzone_backend/internals/features/users/admin/model"
)

// RunAllSeeds mengisi data awal instalasi baru: admin bootstrap (dari env)
// dan zona geofence default di titik kantor. Idempotent — jalan ulang
// tidak menggandakan data.
func RunAllSeeds(db *gorm.DB) {
	seedAdmin(db)
	seedDefaultZone(db)
}

func seedAdmin(db *gorm.DB) {
	email := configs.GetEnv("SEED_ADMIN_EMAIL")
	password := configs.GetEnv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing adminModel.AdminModel
	err := db.Where("admin_email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("❌ [SEED] cek admin gagal: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ [SEED] hash password admin gagal: %v", err)
		return
	}
	admin := adminModel.AdminModel{
		AdminName:     configs.GetEnv("SEED_ADMIN_NAME", "Admin"),
		AdminEmail:    email,
		AdminPassword: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ [SEED] buat admin gagal: %v", err)
		return
	}
	log.Printf("✅ [SEED] admin bootstrap dibuat (%s)", email)
}

func seedDefaultZone(db *gorm.DB) {
	var count int64
	if err := db.Model(&geofenceModel.GeofenceZoneModel{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	cfg := configs.LoadAttendanceConfig()
	zone := geofenceModel.GeofenceZoneModel{
		GeofenceZoneName:     "Kantor Pusat",
		GeofenceZoneLat:      cfg.OfficeLat,
		GeofenceZoneLon:      cfg.OfficeLon,
		GeofenceZoneRadiusM:  cfg.GeofenceRadiusM,
		GeofenceZoneIsActive: true,
	}
	if err := db.Create(&zone).Error; err != nil {
		log.Printf("❌ [SEED] buat zona default gagal: %v", err)
		return
	}
	log.Println("✅ [SEED] zona geofence default dibuat")
}
