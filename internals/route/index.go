// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trackzone_backend/internals/configs"
	attendanceRoute "trackzone_backend/internals/features/attendance/attendance/route"
	checkinRoute "trackzone_backend/internals/features/attendance/checkin/route"
	geofenceRoute "trackzone_backend/internals/features/geofence/route"
	leaveRoute "trackzone_backend/internals/features/leaves/route"
	meetingRoute "trackzone_backend/internals/features/meetings/route"
	notifRoute "trackzone_backend/internals/features/notifications/route"
	notifService "trackzone_backend/internals/features/notifications/service"
	taskRoute "trackzone_backend/internals/features/tasks/route"
	adminRoute "trackzone_backend/internals/features/users/admin/route"
	authRoute "trackzone_backend/internals/features/users/auth/route"
	employeeRoute "trackzone_backend/internals/features/users/employee/route"
	authMw "trackzone_backend/internals/middlewares/auth"
)

// SetupRoutes memasang semua route:
//   /api/auth — publik (login, OTP, bootstrap admin)
//   /api/u    — employee login (check-in, absensi sendiri, tugas, cuti, dll)
//   /api/a    — admin (rekap semua orang, koreksi, master data)
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.AttendanceConfig, notifier *notifService.NotificationService, hub *notifService.Hub) {
	log.Println("[INFO] Mounting public auth routes...")
	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)
	adminRoute.AdminPublicRoutes(api.Group("/auth"), db)

	log.Println("[INFO] Mounting employee routes...")
	employee := app.Group("/api/u", authMw.AuthMiddleware())
	checkinRoute.CheckinEmployeeRoutes(employee, db, cfg, notifier)
	attendanceRoute.AttendanceEmployeeRoutes(employee, db)
	employeeRoute.EmployeeSelfRoutes(employee, db, cfg)
	taskRoute.TaskEmployeeRoutes(employee, db, notifier)
	leaveRoute.LeaveEmployeeRoutes(employee, db, notifier)
	meetingRoute.MeetingEmployeeRoutes(employee, db, notifier)
	notifRoute.NotificationEmployeeRoutes(employee, db, notifier, hub)

	log.Println("[INFO] Mounting admin routes...")
	admin := app.Group("/api/a", authMw.AuthMiddleware())
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	employeeRoute.EmployeeAdminRoutes(admin, db, cfg)
	geofenceRoute.GeofenceAdminRoutes(admin, db)
	taskRoute.TaskAdminRoutes(admin, db, notifier)
	leaveRoute.LeaveAdminRoutes(admin, db, notifier)
	meetingRoute.MeetingAdminRoutes(admin, db, notifier)
	notifRoute.NotificationAdminRoutes(admin, db, notifier)
	adminRoute.AdminRoutes(admin, db)
}
