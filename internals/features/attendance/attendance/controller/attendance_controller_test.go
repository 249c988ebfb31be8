package controller_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trackzone_backend/internals/configs"
	"trackzone_backend/internals/constants"
	"trackzone_backend/internals/features/attendance/attendance/model"
	attendanceRoute "trackzone_backend/internals/features/attendance/attendance/route"
	"trackzone_backend/internals/features/attendance/attendance/service"
	helper "trackzone_backend/internals/helpers"
	authMw "trackzone_backend/internals/middlewares/auth"
)

const testSecret = "unit-test-secret"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = testSecret

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.AttendanceYearModel{},
		&model.AttendanceMonthModel{},
		&model.AttendanceDayModel{},
	))

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	admin := app.Group("/api/a", authMw.AuthMiddleware())
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	return app, db
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	token, err := helper.IssueToken(testSecret, "11111111-1111-1111-1111-111111111111", role, time.Hour, nil)
	require.NoError(t, err)
	return "Bearer " + token
}

func seedAttendance(t *testing.T, db *gorm.DB) {
	t.Helper()
	svc := service.NewAttendanceService(db)
	_, err := svc.ApplyDays("EMP001", 2024, []model.AttendanceDayModel{
		{
			AttendanceDayDate:   time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			AttendanceDayStatus: constants.StatusPresent,
		},
		{
			AttendanceDayDate:   time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC),
			AttendanceDayStatus: constants.StatusLate,
		},
	})
	require.NoError(t, err)
}

func doRequest(t *testing.T, app *fiber.App, method, url, auth string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, url, nil)
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	if len(raw) > 0 {
		_ = sonic.Unmarshal(raw, &body)
	}
	return resp, body
}

func TestGetYearSummaryAsAdmin(t *testing.T) {
	app, db := newTestApp(t)
	seedAttendance(t, db)

	resp, body := doRequest(t, app, http.MethodGet,
		"/api/a/attendance/EMP001/2024/summary", bearer(t, constants.RoleAdmin))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, data["total_working_days"])
	assert.EqualValues(t, 1, data["present_days"])
	assert.EqualValues(t, 1, data["late_days"])
}

func TestGetMonthAsAdmin(t *testing.T) {
	app, db := newTestApp(t)
	seedAttendance(t, db)

	resp, body := doRequest(t, app, http.MethodGet,
		"/api/a/attendance/EMP001/2024/6", bearer(t, constants.RoleAdmin))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	days, ok := data["days"].([]any)
	require.True(t, ok)
	assert.Len(t, days, 2)
}

func TestGetYearUnknownEmployee(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodGet,
		"/api/a/attendance/EMP404/2024", bearer(t, constants.RoleAdmin))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminRoutesRejectEmployeeRole(t *testing.T) {
	app, db := newTestApp(t)
	seedAttendance(t, db)

	resp, _ := doRequest(t, app, http.MethodGet,
		"/api/a/attendance/EMP001/2024", bearer(t, constants.RoleEmployee))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodGet,
		"/api/a/attendance/EMP001/2024", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
