package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func authApp(t *testing.T, tokenHash string) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(WebhookAuth(tokenHash))
	app.Get("/sync", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestWebhookAuthOpenWithoutHash(t *testing.T) {
	app := authApp(t, "")
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/sync", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on open endpoint, got %d", resp.StatusCode)
	}
}

func TestWebhookAuthToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash token: %v", err)
	}
	app := authApp(t, string(hash))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/sync", nil))
	if err != nil {
		t.Fatalf("no token: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/sync", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer wrong")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("wrong token: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/sync", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer s3cret")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("good token: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", resp.StatusCode)
	}

	// Header-less callers may pass the token as a query parameter.
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/sync?token=s3cret", nil))
	if err != nil {
		t.Fatalf("query token: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with query token, got %d", resp.StatusCode)
	}
}
