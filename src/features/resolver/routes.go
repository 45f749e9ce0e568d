package resolver

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the resolver feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	resolver := app.Group("/resolver")
	resolver.Get("/resolve", handler.ResolvePath)
}
