package hosting

import (
	"fmt"
	"log/slog"

	"cuebox/src/dj"
	"cuebox/src/features/analyze"
	"cuebox/src/features/collection"
	"cuebox/src/features/config"
	"cuebox/src/features/export"
	"cuebox/src/features/metrics"
	"cuebox/src/features/resolver"
	"cuebox/src/features/timeline"
	"cuebox/src/features/ui"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

// Server is the HTTP server for the application.
type Server struct {
	app  *fiber.App
	port uint32
}

// NewServer creates a new HTTP server.
func NewServer(cfg *config.Manager, collectionService *collection.Service, resolverService *resolver.Service, analyzeService *analyze.Service, exportService *export.Service, timelineService *timeline.Service, metricsService *metrics.Service) *Server {
	engine := html.New("./views", ".html")
	engine.Debug(cfg.Get().Logger.Level == "debug")

	engine.AddFunc("isDebug", func() bool {
		return cfg.Get().Logger.HTMXDebug
	})

	// Display helpers for the catalog views
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	engine.AddFunc("duration", func(seconds int) string {
		if seconds < 0 {
			return "unknown"
		}
		return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
	})
	engine.AddFunc("offset", func(seconds float64) string {
		if seconds < 0 {
			return "0:00"
		}
		minutes := int(seconds) / 60
		return fmt.Sprintf("%d:%05.2f", minutes, seconds-float64(minutes*60))
	})
	engine.AddFunc("filesize", func(size int64) string {
		if size < 0 {
			return "unknown"
		}
		switch {
		case size < 1<<10:
			return fmt.Sprintf("%d B", size)
		case size < 1<<20:
			return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
		case size < 1<<30:
			return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
		}
		return fmt.Sprintf("%.1f GB", float64(size)/(1<<30))
	})
	engine.AddFunc("stars", func(rating int) string {
		if rating <= 0 {
			return "unrated"
		}
		if rating > 5 {
			rating = 5
		}
		out := ""
		for i := 0; i < 5; i++ {
			if i < rating {
				out += "★"
			} else {
				out += "☆"
			}
		}
		return out
	})
	engine.AddFunc("markColor", func(c *dj.Color) string {
		if c == nil {
			return ""
		}
		return fmt.Sprintf("rgb(%d,%d,%d)", c.Red, c.Green, c.Blue)
	})
	engine.AddFunc("bpm", func(v float64) string {
		if v < 0 {
			return "unknown"
		}
		return fmt.Sprintf("%.2f", v)
	})

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error("Internal Server Error", "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
		AppName:               "Cuebox",
		DisableStartupMessage: true,
		EnablePrintRoutes:     cfg.Get().Server.PrintRoutes,
	})

	app.Use(RequestMetricsMiddleware())
	app.Use(HTMXMiddleware())

	app.Static("/", "./public")
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	uiHandler := ui.NewHandler(cfg, collectionService)

	collection.RegisterRoutes(app, collectionService)
	resolver.RegisterRoutes(app, resolverService)
	analyze.RegisterRoutes(app, analyzeService)
	export.RegisterRoutes(app, exportService)
	ui.RegisterRoutes(app, uiHandler)
	config.RegisterRoutes(app, cfg)
	metrics.RegisterRoutes(app, metrics.NewHandler(metricsService))
	if timelineService != nil {
		timeline.RegisterRoutes(app, timelineService)
	}

	return &Server{app: app, port: cfg.Get().Server.Port}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.app.Listen(":" + fmt.Sprint(s.port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
