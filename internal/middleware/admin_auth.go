package middleware

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"covershop/internal/services"
)

// AdminRequired is a Fiber middleware guarding mutating routes. Credentials
// arrive as HTTP Basic auth and are compared per request against the
// configured admin pair; no session or token is involved.
func AdminRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, password, ok := basicCredentials(c.Get("Authorization"))
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Admin credentials are required",
			})
		}

		if err := authService.Login(username, password); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Incorrect username or password",
			})
		}

		c.Locals("admin_username", username)
		return c.Next()
	}
}

// basicCredentials extracts the username and password from a
// "Basic <base64(user:pass)>" Authorization header.
func basicCredentials(header string) (string, string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Basic" {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}
	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}
	return username, password, true
}
