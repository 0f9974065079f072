package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	applog "buildsurge/internal/log"
)

// RequireAdmin gates the admin surface behind a shared password
// checked against a bcrypt hash. With no hash configured the surface
// stays open, matching the original single-operator deployment.
func RequireAdmin(passwordHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if passwordHash == "" {
			return c.Next()
		}
		pw := c.Get("X-Admin-Password")
		if pw == "" {
			pw = c.Query("key")
		}
		if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(pw)) != nil {
			applog.Security(c, "access.denied.admin", nil)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Access denied.",
			})
		}
		return c.Next()
	}
}
