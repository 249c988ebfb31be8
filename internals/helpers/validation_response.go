package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// JsonValidationError: error validasi validator.v10 dipecah per field
// (field → tag yang gagal) supaya client tahu persis kolom mana yang salah.
// Error lain jatuh ke JsonError 400 biasa.
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
	}

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success:   false,
		Message:   "Validasi gagal",
		ErrorCode: statusToErrorCode(fiber.StatusBadRequest),
		Errors:    fields,
	})
}
