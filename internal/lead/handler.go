package lead

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/leadgrid/leadgrid/internal/lock"
)

// Handler exposes the upsert webhook.
type Handler struct {
	service *Service
}

// NewHandler constructs the webhook HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Sync accepts a lead payload on any method: a well-formed JSON object body
// wins, otherwise query and form parameters are flattened into the payload.
// Callers get the uniform status envelope either way.
func (h *Handler) Sync(c *fiber.Ctx) error {
	payload := parsePayload(c)

	result, err := h.service.Upsert(c.UserContext(), payload)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":              "success",
		"action":              result.Action,
		"phone":               result.Phone,
		"debug_received_data": payload,
		"debug_extracted":     result.Extracted,
		"debug_col_indexes":   result.Columns,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNoIdentity):
		return http.StatusBadRequest
	case errors.Is(err, lock.ErrTimeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func parsePayload(c *fiber.Ctx) Payload {
	if body := c.Body(); len(body) > 0 {
		var m map[string]any
		if err := json.Unmarshal(body, &m); err == nil && m != nil {
			return Payload(m)
		}
	}

	payload := Payload{}
	for key, value := range c.Queries() {
		payload[key] = value
	}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		payload[string(key)] = string(value)
	})
	return payload
}
