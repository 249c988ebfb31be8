package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trackzone_backend/internals/configs"
	controller "trackzone_backend/internals/features/users/employee/controller"
	authMw "trackzone_backend/internals/middlewares/auth"
)

// EmployeeAdminRoutes: CRUD akun karyawan (admin only).
func EmployeeAdminRoutes(api fiber.Router, db *gorm.DB, cfg configs.AttendanceConfig) {
	ctrl := controller.NewEmployeeController(db, cfg)

	emp := api.Group("/employees", authMw.IsAdmin("Employee"))
	emp.Post("/", ctrl.Register)
	emp.Get("/", ctrl.List)
	emp.Get("/:code", ctrl.GetByCode)
	emp.Put("/:code", ctrl.Update)
	emp.Delete("/:code", ctrl.Delete)
}

// EmployeeSelfRoutes: profil, fingerprint, dashboard, gaji milik sendiri.
func EmployeeSelfRoutes(api fiber.Router, db *gorm.DB, cfg configs.AttendanceConfig) {
	ctrl := controller.NewEmployeeController(db, cfg)

	emp := api.Group("/employees", authMw.IsEmployee("Employee"))
	emp.Get("/me", ctrl.Me)
	emp.Post("/fingerprint", ctrl.RegisterFingerprint)
	emp.Get("/dashboard", ctrl.Dashboard)
	emp.Get("/salary", ctrl.Salary)
}
