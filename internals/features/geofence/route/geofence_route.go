package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "trackzone_backend/internals/features/geofence/controller"
	authMw "trackzone_backend/internals/middlewares/auth"
)

// GeofenceAdminRoutes: CRUD zona check-in (admin only).
func GeofenceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGeofenceController(db)

	grp := api.Group("/geofence", authMw.IsAdmin("Geofence"))
	grp.Post("/", ctrl.Create)
	grp.Get("/", ctrl.List)
	grp.Put("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
}
