package export

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the export feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	ex := app.Group("/export")
	ex.Post("/snapshot", handler.CreateSnapshot)
}
