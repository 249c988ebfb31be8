package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "trackzone_backend/internals/features/users/admin/controller"
	authMw "trackzone_backend/internals/middlewares/auth"
)

// AdminRoutes: dashboard operasional (admin only).
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(db)
	api.Get("/dashboard", authMw.IsAdmin("Dashboard"), ctrl.DashboardOverview)
}

// AdminPublicRoutes: bootstrap admin pertama (cek di controller).
func AdminPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(db)
	api.Post("/admin/register", ctrl.Register)
}
