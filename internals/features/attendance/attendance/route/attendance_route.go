package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "trackzone_backend/internals/features/attendance/attendance/controller"
	authMw "trackzone_backend/internals/middlewares/auth"
)

// AttendanceAdminRoutes: baca rekap siapa pun + koreksi harian (admin only).
func AttendanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := api.Group("/attendance", authMw.IsAdmin("Absensi"))
	attendance.Get("/:employee_id/:year", ctrl.GetYear)
	attendance.Get("/:employee_id/:year/summary", ctrl.GetYearSummary)
	attendance.Get("/:employee_id/:year/:month", ctrl.GetMonth)
	attendance.Put("/:employee_id/:year/:month/day", ctrl.UpdateDay)
}

// AttendanceEmployeeRoutes: employee hanya boleh baca miliknya sendiri
// (employee_id diambil dari token, bukan dari path).
func AttendanceEmployeeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := api.Group("/attendance", authMw.IsEmployee("Absensi"))
	attendance.Get("/me/:year", ctrl.GetYear)
	attendance.Get("/me/:year/summary", ctrl.GetYearSummary)
	attendance.Get("/me/:year/:month", ctrl.GetMonth)
}
