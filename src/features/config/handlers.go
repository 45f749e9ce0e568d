package config

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the config feature.
type Handler struct {
	manager *Manager
}

// NewHandler creates a new handler for the config feature.
func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// GetConfig returns the current configuration.
func (h *Handler) GetConfig(c *fiber.Ctx) error {
	slog.Debug("GetConfig handler called")

	if strings.Contains(c.Get("Accept"), "application/yaml") {
		c.Set("Content-Type", "application/yaml")
		return c.SendString(h.manager.GetYAML())
	}
	c.Set("Content-Type", "application/json")
	return c.SendString(h.manager.GetJSON())
}
