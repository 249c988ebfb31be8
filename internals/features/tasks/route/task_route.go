package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifService "trackzone_backend/internals/features/notifications/service"
	controller "trackzone_backend/internals/features/tasks/controller"
	authMw "trackzone_backend/internals/middlewares/auth"
)

// TaskAdminRoutes: assign + monitoring tugas.
func TaskAdminRoutes(api fiber.Router, db *gorm.DB, notifier *notifService.NotificationService) {
	ctrl := controller.NewTaskController(db, notifier)

	grp := api.Group("/tasks", authMw.IsAdmin("Tugas"))
	grp.Post("/", ctrl.Assign)
	grp.Get("/", ctrl.ListAll)
	grp.Post("/:id/comments", ctrl.AddComment)
}

// TaskEmployeeRoutes: tugas milik sendiri.
func TaskEmployeeRoutes(api fiber.Router, db *gorm.DB, notifier *notifService.NotificationService) {
	ctrl := controller.NewTaskController(db, notifier)

	grp := api.Group("/tasks", authMw.IsEmployee("Tugas"))
	grp.Get("/", ctrl.ListMine)
	grp.Put("/:id/status", ctrl.UpdateStatus)
	grp.Post("/:id/comments", ctrl.AddComment)
}
