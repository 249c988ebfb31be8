package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "trackzone_backend/internals/features/meetings/controller"
	notifService "trackzone_backend/internals/features/notifications/service"
	authMw "trackzone_backend/internals/middlewares/auth"
)

// MeetingAdminRoutes: penjadwalan meeting.
func MeetingAdminRoutes(api fiber.Router, db *gorm.DB, notifier *notifService.NotificationService) {
	ctrl := controller.NewMeetingController(db, notifier)

	grp := api.Group("/meetings", authMw.IsAdmin("Meeting"))
	grp.Post("/", ctrl.Schedule)
	grp.Get("/", ctrl.ListAll)
	grp.Delete("/:id", ctrl.Cancel)
}

// MeetingEmployeeRoutes: agenda meeting milik sendiri.
func MeetingEmployeeRoutes(api fiber.Router, db *gorm.DB, notifier *notifService.NotificationService) {
	ctrl := controller.NewMeetingController(db, notifier)
	api.Get("/meetings", authMw.IsEmployee("Meeting"), ctrl.ListMine)
}
