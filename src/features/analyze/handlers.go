package analyze

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the analyze feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the analyze feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetLocalPath returns the decoded filesystem path of a track.
func (h *Handler) GetLocalPath(c *fiber.Ctx) error {
	id := c.Params("id")
	slog.Debug("GetLocalPath handler called", "id", id)

	path, err := h.service.LocalPath(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"id":   id,
		"path": path,
	})
}

// VerifyTrack checks a catalog entry against the file it points at.
func (h *Handler) VerifyTrack(c *fiber.Ctx) error {
	id := c.Params("id")
	slog.Debug("VerifyTrack handler called", "id", id)

	report, err := h.service.Verify(c.Context(), id)
	if err != nil {
		slog.Error("Error verifying track", "id", id, "error", err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}
