package middleware

import (
	"fmt"
	apimodels "project-request-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		size := int64(c.Request().Header.ContentLength())
		if limit > 0 && size > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(apimodels.NewError(
				fmt.Sprintf("Request body too large. Maximum allowed: %d bytes", limit)))
		}
		return c.Next()
	}
}
