package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trackzone_backend/internals/configs"
	controller "trackzone_backend/internals/features/attendance/checkin/controller"
	"trackzone_backend/internals/features/attendance/checkin/service"
	geofenceService "trackzone_backend/internals/features/geofence/service"
	authMw "trackzone_backend/internals/middlewares/auth"
)

// CheckinEmployeeRoutes: semua operasi kehadiran milik employee login.
func CheckinEmployeeRoutes(api fiber.Router, db *gorm.DB, cfg configs.AttendanceConfig, notifier service.Notifier) {
	ctrl := controller.NewCheckinController(db, cfg, notifier)
	// zona dari tabel geofence_zones, fallback lingkaran kantor dari env
	ctrl.Service.Fence = geofenceService.NewDBFence(db, cfg)

	grp := api.Group("/checkin", authMw.IsEmployee("Check-in"))
	grp.Post("/", ctrl.CheckIn)
	grp.Get("/today", ctrl.Today)
	grp.Post("/fingerprint/verify", ctrl.VerifyFingerprint)

	api.Post("/checkout", authMw.IsEmployee("Check-out"), ctrl.CheckOut)
}
