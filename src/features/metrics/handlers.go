package metrics

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the metrics feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new metrics handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetCollectionStats returns the catalog statistics, as an HTMX partial or
// as JSON.
func (h *Handler) GetCollectionStats(c *fiber.Ctx) error {
	slog.Debug("GetCollectionStats handler called")

	stats := h.service.GetCollectionStats()

	acceptHeader := c.Get("Accept")
	hxRequest := c.Get("HX-Request")
	if strings.Contains(acceptHeader, "text/html") || hxRequest == "true" {
		return c.Render("metrics/overview", fiber.Map{
			"Stats": stats,
		})
	}

	return c.JSON(stats)
}
