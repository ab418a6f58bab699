package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// WebhookAuth verifies the shared webhook token against its bcrypt hash.
// When no hash is configured the endpoint stays open, matching the original
// public webhook. The token is taken from the Authorization bearer header or,
// for callers that cannot set headers, the "token" query parameter.
func WebhookAuth(tokenHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenHash == "" {
			return c.Next()
		}

		token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			return fiber.NewError(http.StatusUnauthorized, "missing webhook token")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid webhook token")
		}
		return c.Next()
	}
}
