package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "trackzone_backend/internals/features/users/auth/controller"
	"trackzone_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik — login terpadu + reset password via OTP.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/password/otp", middlewares.OTPRateLimiter(), ctrl.RequestPasswordOTP)
	auth.Post("/password/reset", ctrl.ResetPasswordWithOTP)
}
