package timeline

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the timeline feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the timeline feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetPlaces returns the visited places, optionally filtered by date
// (YYYY-MM-DD bounds).
func (h *Handler) GetPlaces(c *fiber.Ctx) error {
	slog.Debug("GetPlaces handler called")

	var start, end time.Time
	if q := c.Query("start"); q != "" {
		t, err := time.Parse("2006-01-02", q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid 'start' date, expected YYYY-MM-DD",
			})
		}
		start = t
	}
	if q := c.Query("end"); q != "" {
		t, err := time.Parse("2006-01-02", q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid 'end' date, expected YYYY-MM-DD",
			})
		}
		// Include the whole end day
		end = t.Add(24*time.Hour - time.Nanosecond)
	}

	places := h.service.Places(start, end)
	return c.JSON(fiber.Map{
		"places": places,
		"count":  len(places),
	})
}

// GetRoutes returns the extracted movements.
func (h *Handler) GetRoutes(c *fiber.Ctx) error {
	slog.Debug("GetRoutes handler called")

	routes := h.service.Routes()
	return c.JSON(fiber.Map{
		"routes": routes,
		"count":  len(routes),
	})
}
