package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "trackzone_backend/internals/features/leaves/controller"
	notifService "trackzone_backend/internals/features/notifications/service"
	authMw "trackzone_backend/internals/middlewares/auth"
)

// LeaveAdminRoutes: review + keputusan cuti.
func LeaveAdminRoutes(api fiber.Router, db *gorm.DB, notifier *notifService.NotificationService) {
	ctrl := controller.NewLeaveController(db, notifier)

	grp := api.Group("/leaves", authMw.IsAdmin("Cuti"))
	grp.Get("/", ctrl.ListAll)
	grp.Put("/:id", ctrl.Decide)
}

// LeaveEmployeeRoutes: pengajuan + riwayat cuti sendiri.
func LeaveEmployeeRoutes(api fiber.Router, db *gorm.DB, notifier *notifService.NotificationService) {
	ctrl := controller.NewLeaveController(db, notifier)

	grp := api.Group("/leaves", authMw.IsEmployee("Cuti"))
	grp.Post("/", ctrl.Submit)
	grp.Get("/", ctrl.ListMine)
}
