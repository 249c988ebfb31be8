package auth

import (
	"github.com/gofiber/fiber/v2"

	"trackzone_backend/internals/constants"
	helper "trackzone_backend/internals/helpers"
)

// OnlyRoles membatasi akses berdasarkan claim role di Locals.
func OnlyRoles(feature string, roles ...string) fiber.Handler {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetRole(c)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

func IsAdmin(feature string) fiber.Handler {
	return OnlyRoles(feature, constants.RoleAdmin)
}

func IsEmployee(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.GetRole(c) != constants.RoleEmployee {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorEmployee(feature))
		}
		return c.Next()
	}
}
