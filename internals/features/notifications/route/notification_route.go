package route

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "trackzone_backend/internals/features/notifications/controller"
	"trackzone_backend/internals/features/notifications/service"
	helper "trackzone_backend/internals/helpers"
	authMw "trackzone_backend/internals/middlewares/auth"
)

// NotificationAdminRoutes: kirim pengumuman manual.
func NotificationAdminRoutes(api fiber.Router, db *gorm.DB, svc *service.NotificationService) {
	ctrl := controller.NewNotificationController(db, svc)
	api.Post("/notifications", authMw.IsAdmin("Notifikasi"), ctrl.Send)
}

// NotificationEmployeeRoutes: inbox + websocket push realtime.
func NotificationEmployeeRoutes(api fiber.Router, db *gorm.DB, svc *service.NotificationService, hub *service.Hub) {
	ctrl := controller.NewNotificationController(db, svc)

	grp := api.Group("/notifications", authMw.IsEmployee("Notifikasi"))
	grp.Get("/", ctrl.ListMine)
	grp.Put("/:id/read", ctrl.MarkRead)

	// upgrade websocket hanya untuk request yang memang websocket;
	// employee_code disalin ke Locals sebelum upgrade karena handler
	// websocket tidak bisa baca Locals milik request Fiber lagi
	grp.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		c.Locals("ws_employee_code", helper.GetEmployeeID(c))
		return c.Next()
	})
	grp.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		code, _ := conn.Locals("ws_employee_code").(string)
		if code == "" {
			_ = conn.Close()
			return
		}
		hub.Register(code, conn)
		defer func() {
			hub.Unregister(code, conn)
			_ = conn.Close()
		}()
		// baca terus supaya close frame terdeteksi; isi pesan diabaikan
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}
