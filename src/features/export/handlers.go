package export

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the export feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the export feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateSnapshot writes a new snapshot of the loaded collection.
func (h *Handler) CreateSnapshot(c *fiber.Ctx) error {
	slog.Debug("CreateSnapshot handler called")

	info, err := h.service.Snapshot(c.Context())
	if err != nil {
		slog.Error("Error creating snapshot", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}
