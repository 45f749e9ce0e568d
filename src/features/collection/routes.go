package collection

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the collection feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	ui := app.Group("/ui")
	ui.Get("/collection/table", handler.GetTracks)

	col := app.Group("/collection")
	col.Get("/tracks", handler.GetTracks)
	col.Get("/tracks/:id", handler.GetTrack)
	col.Get("/search", handler.SearchTracks)
	col.Post("/reload", handler.ReloadCollection)
}
