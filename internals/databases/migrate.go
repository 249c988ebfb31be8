package database

import (
	"log"

	"gorm.io/gorm"

	attModel "trackzone_backend/internals/features/attendance/attendance/model"
	checkinModel "trackzone_backend/internals/features/attendance/checkin/model"
	geofenceModel "trackzone_backend/internals/features/geofence/model"
	leaveModel "trackzone_backend/internals/features/leaves/model"
	meetingModel "trackzone_backend/internals/features/meetings/model"
	notifModel "trackzone_backend/internals/features/notifications/model"
	taskModel "trackzone_backend/internals/features/tasks/model"
	adminModel "trackzone_backend/internals/features/users/admin/model"
	empModel "trackzone_backend/internals/features/users/employee/model"
)

// MigrateAll menjalankan AutoMigrate untuk semua tabel. Unique index
// dibuat di sini juga — aplikasi mengandalkannya untuk retry-as-merge.
func MigrateAll(db *gorm.DB) {
	err := db.AutoMigrate(
		&adminModel.AdminModel{},
		&empModel.EmployeeModel{},

		&attModel.AttendanceYearModel{},
		&attModel.AttendanceMonthModel{},
		&attModel.AttendanceDayModel{},
		&checkinModel.CheckInEventModel{},

		&geofenceModel.GeofenceZoneModel{},
		&notifModel.NotificationModel{},
		&taskModel.TaskModel{},
		&leaveModel.LeaveRequestModel{},
		&meetingModel.MeetingModel{},
	)
	if err != nil {
		log.Fatalf("❌ Gagal migrasi database: %v", err)
	}
	log.Println("✅ Migrasi database selesai")
}
