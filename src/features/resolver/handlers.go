package resolver

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the resolver feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the resolver feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ResolvePath resolves a file path to a catalog entry.
func (h *Handler) ResolvePath(c *fiber.Ctx) error {
	slog.Debug("ResolvePath handler called")

	path := c.Query("path")
	if path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing 'path' query parameter",
		})
	}

	track := h.service.Resolve(path)

	acceptHeader := c.Get("Accept")
	hxRequest := c.Get("HX-Request")
	wantsHTML := strings.Contains(acceptHeader, "text/html") || hxRequest == "true"

	if track == nil {
		if wantsHTML {
			return c.Render("resolver/no_match", fiber.Map{
				"Path": path,
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"match": false,
			"path":  path,
		})
	}

	if wantsHTML {
		return c.Render("resolver/result", fiber.Map{
			"Path":  path,
			"Track": track,
		})
	}
	return c.JSON(fiber.Map{
		"match": true,
		"path":  path,
		"track": track,
	})
}
