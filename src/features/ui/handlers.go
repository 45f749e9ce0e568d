package ui

import (
	"log/slog"

	"cuebox/src/features/collection"
	"cuebox/src/features/config"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the UI feature.
type Handler struct {
	configManager *config.Manager
	collection    *collection.Service
}

// NewHandler creates a new handler for the UI feature.
func NewHandler(configManager *config.Manager, collectionService *collection.Service) *Handler {
	return &Handler{
		configManager: configManager,
		collection:    collectionService,
	}
}

// RenderDashboard renders the main dashboard page.
func (h *Handler) RenderDashboard(c *fiber.Ctx) error {
	slog.Debug("RenderDashboard handler called")
	data := fiber.Map{
		"Title":      "Dashboard",
		"Product":    h.collection.Product(),
		"TrackCount": len(h.collection.Tracks()),
		"Collection": h.configManager.Get().CollectionPath,
	}
	if c.Get("HX-Request") != "true" {
		data["Section"] = "dashboard"
		return c.Render("main", data)
	}
	return c.Render("sections/dashboard", data)
}

// RenderCollectionSection renders the collection browser page.
func (h *Handler) RenderCollectionSection(c *fiber.Ctx) error {
	slog.Debug("RenderCollectionSection handler called")
	data := fiber.Map{
		"Title": "Collection",
	}
	if c.Get("HX-Request") != "true" {
		data["Section"] = "collection"
		return c.Render("main", data)
	}
	return c.Render("sections/collection", data)
}

// RenderResolverSection renders the path resolve form.
func (h *Handler) RenderResolverSection(c *fiber.Ctx) error {
	slog.Debug("RenderResolverSection handler called")
	data := fiber.Map{
		"Title": "Resolve",
	}
	if c.Get("HX-Request") != "true" {
		data["Section"] = "resolver"
		return c.Render("main", data)
	}
	return c.Render("sections/resolver", data)
}
