package collection

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the collection feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the collection feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Pagination represents pagination information
type Pagination struct {
	Page       int
	Limit      int
	TotalCount int
	TotalPages int
	NextPage   int
	PrevPage   int
	HasNext    bool
	HasPrev    bool
}

// NewPagination creates a new Pagination instance with calculated values
func NewPagination(page, limit, totalCount int) Pagination {
	totalPages := (totalCount + limit - 1) / limit
	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
		NextPage:   page + 1,
		PrevPage:   page - 1,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func wantsHTML(c *fiber.Ctx) bool {
	return strings.Contains(c.Get("Accept"), "text/html") || c.Get("HX-Request") == "true"
}

// GetTracks is the handler for listing the collection.
func (h *Handler) GetTracks(c *fiber.Ctx) error {
	slog.Debug("GetTracks handler called")

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)
	offset := (page - 1) * limit

	tracks := h.service.TracksPaginated(limit, offset)
	totalCount := len(h.service.Tracks())

	if wantsHTML(c) {
		return c.Render("collection/tracks_table", fiber.Map{
			"Tracks":     tracks,
			"Pagination": NewPagination(page, limit, totalCount),
		})
	}
	return c.JSON(fiber.Map{
		"tracks": tracks,
		"total":  totalCount,
		"page":   page,
		"limit":  limit,
	})
}

// GetTrack is the handler for a single track by ID.
func (h *Handler) GetTrack(c *fiber.Ctx) error {
	id := c.Params("id")
	slog.Debug("GetTrack handler called", "id", id)

	track := h.service.GetTrack(id)
	if track == nil {
		if wantsHTML(c) {
			return c.Status(fiber.StatusNotFound).SendString("Track not found")
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "track not found",
			"id":    id,
		})
	}

	if wantsHTML(c) {
		return c.Render("collection/track_detail", fiber.Map{
			"Track": track,
		})
	}
	return c.JSON(track)
}

// SearchTracks is the handler for substring and fuzzy search.
func (h *Handler) SearchTracks(c *fiber.Ctx) error {
	slog.Debug("SearchTracks handler called")

	if closest := c.Query("closest"); closest != "" {
		track, score := h.service.FindClosest(closest)
		if track == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "no track close enough to query",
				"query": closest,
			})
		}
		return c.JSON(fiber.Map{
			"track": track,
			"score": score,
		})
	}

	var tracks interface{}
	switch {
	case c.Query("artist") != "":
		tracks = h.service.SearchByArtist(c.Query("artist"))
	default:
		tracks = h.service.SearchByName(c.Query("name"))
	}
	return c.JSON(fiber.Map{
		"tracks": tracks,
	})
}

// ReloadCollection re-parses the export file.
func (h *Handler) ReloadCollection(c *fiber.Ctx) error {
	slog.Debug("ReloadCollection handler called")

	if err := h.service.Reload(); err != nil {
		slog.Error("Error reloading collection", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"reloaded": true,
		"tracks":   len(h.service.Tracks()),
	})
}
