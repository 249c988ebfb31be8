package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func GetEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// =======================
// ATTENDANCE CONFIG
// =======================

// AttendanceConfig: semua ambang batas absensi dari ENV, bukan hardcode.
// Dipakai service check-in & scheduler; bisa di-inject manual saat testing.
type AttendanceConfig struct {
	OfficeLat       float64 // titik kantor (fallback kalau tabel geofence kosong)
	OfficeLon       float64
	GeofenceRadiusM float64 // meter

	CheckInOpenHour  int    // jam buka check-in (default 09)
	CheckInCloseHour int    // jam tutup check-in (default 19)
	LateAfter        string // "HH:MM" — lewat dari ini status = Late

	SweepSpec string // jadwal cron auto check-in/out (default 17:00)

	HourlyRate float64 // tarif per jam untuk endpoint salary
}

func LoadAttendanceConfig() AttendanceConfig {
	return AttendanceConfig{
		OfficeLat:        GetEnvFloat("OFFICE_LAT", 10.8261981),
		OfficeLon:        GetEnvFloat("OFFICE_LON", 77.0608064),
		GeofenceRadiusM:  GetEnvFloat("GEOFENCE_RADIUS_M", 500000),
		CheckInOpenHour:  GetEnvInt("CHECKIN_OPEN_HOUR", 9),
		CheckInCloseHour: GetEnvInt("CHECKIN_CLOSE_HOUR", 19),
		LateAfter:        GetEnv("LATE_AFTER", "09:15"),
		SweepSpec:        GetEnv("SWEEP_CRON", "0 17 * * *"),
		HourlyRate:       GetEnvFloat("HOURLY_RATE", 100),
	}
}

// LateAfterMinutes mengubah "HH:MM" jadi menit sejak tengah malam.
// Format rusak → fallback 09:15.
func (c AttendanceConfig) LateAfterMinutes() int {
	t, err := time.Parse("15:04", c.LateAfter)
	if err != nil {
		return 9*60 + 15
	}
	return t.Hour()*60 + t.Minute()
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Info,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	} else {
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
