package analyze

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the analyze feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	an := app.Group("/analyze")
	an.Get("/tracks/:id/path", handler.GetLocalPath)
	an.Get("/tracks/:id/verify", handler.VerifyTrack)
}
