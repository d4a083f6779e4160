package admin

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAPIKey guards the admin routes with a shared key carried in the
// X-Admin-Key header. An empty configured key rejects every request, so a
// deployment that never set one is closed rather than open.
func RequireAPIKey(key string) fiber.Handler {
	key = strings.TrimSpace(key)
	return func(c *fiber.Ctx) error {
		if key == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "admin key not configured")
		}
		if strings.TrimSpace(c.Get("X-Admin-Key")) != key {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid admin key")
		}
		return c.Next()
	}
}
