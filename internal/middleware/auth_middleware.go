package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin guards mutating routes with the static admin bearer token.
// The token is captured once at startup; there is no session state.
func RequireAdmin(adminToken string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		provided := strings.TrimPrefix(header, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(adminToken)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		return c.Next()
	}
}
