package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/leadgrid/leadgrid/internal/lead"
)

// RegisterSyncRoutes wires the upsert webhook. Both methods are accepted
// because legacy form integrations call it with GET and query parameters.
func RegisterSyncRoutes(r fiber.Router, h *lead.Handler, guards ...fiber.Handler) {
	handlers := append(append([]fiber.Handler{}, guards...), h.Sync)
	r.Post("/sync", handlers...)
	r.Get("/sync", handlers...)
}
