package timeline

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the timeline feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	tl := app.Group("/timeline")
	tl.Get("/places", handler.GetPlaces)
	tl.Get("/routes", handler.GetRoutes)
}
