package ui

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the UI feature.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.RenderDashboard)

	ui := app.Group("/ui")
	ui.Get("/dashboard", handler.RenderDashboard)
	ui.Get("/collection", handler.RenderCollectionSection)
	ui.Get("/resolver", handler.RenderResolverSection)
}
