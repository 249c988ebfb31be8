package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"trackzone_backend/internals/configs"
	"trackzone_backend/internals/features/attendance/checkin/service"
)

// StartAutoSweepScheduler menjadwalkan sweep harian (default 17:00):
// tutup check-in manual yang masih terbuka + sintesis check-in otomatis
// untuk yang belum punya event hari itu.
func StartAutoSweepScheduler(db *gorm.DB, cfg configs.AttendanceConfig, notifier service.Notifier) *cron.Cron {
	svc := service.NewCheckinService(db, cfg, notifier)

	c := cron.New()
	_, err := c.AddFunc(cfg.SweepSpec, func() {
		start := time.Now()
		results := svc.RunAutoSweep(start)

		closed, opened, failed := 0, 0, 0
		for _, r := range results {
			switch {
			case r.Err != nil:
				failed++
			case r.Action == service.SweepAutoClose:
				closed++
			case r.Action == service.SweepAutoOpen:
				opened++
			}
		}
		log.Printf("⏰ [SWEEP] selesai dalam %s: auto-close=%d auto-open=%d gagal=%d",
			time.Since(start).Round(time.Millisecond), closed, opened, failed)
	})
	if err != nil {
		log.Printf("❌ [SWEEP] spec cron %q tidak valid: %v", cfg.SweepSpec, err)
		return c
	}

	c.Start()
	log.Printf("✅ [SWEEP] scheduler aktif (spec %q)", cfg.SweepSpec)
	return c
}
