package hosting

import (
	"log/slog"
	"strconv"
	"time"

	"cuebox/src/features/metrics"

	"github.com/gofiber/fiber/v2"
)

// RequestMetricsMiddleware counts every request by method, route and status.
func RequestMetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		status := strconv.Itoa(c.Response().StatusCode())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), path, status).Inc()

		return err
	}
}

// HTMXMiddleware creates middleware for logging HTMX requests
func HTMXMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		isHTMX := c.Get("HX-Request") == "true"

		err := c.Next()

		if isHTMX {
			duration := time.Since(start)

			slog.Debug("HTMX request",
				"method", c.Method(),
				"path", c.Path(),
				"status", c.Response().StatusCode(),
				"duration", duration.String(),
				"hx_trigger", c.Get("HX-Trigger"),
				"hx_target", c.Get("HX-Target"),
				"hx_current_url", c.Get("HX-Current-URL"),
			)
		}

		return err
	}
}
