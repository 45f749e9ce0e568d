package timeline

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Service is the domain service for the timeline feature. The extract is
// built once at load and read-only afterwards.
type Service struct {
	extract *Extract
}

// NewService loads the location-history export at path.
func NewService(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open timeline %s: %w", path, err)
	}
	defer f.Close()

	extract, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timeline %s: %w", path, err)
	}

	slog.Info("Timeline loaded", "path", path, "places", len(extract.Places), "routes", len(extract.Routes))
	return &Service{extract: extract}, nil
}

// Places returns the visited places, optionally restricted to a date range.
// Bounds are inclusive; zero times disable the respective bound. Places with
// unparseable timestamps are dropped when a bound is set.
func (s *Service) Places(start, end time.Time) []Place {
	slog.Debug("Places service called", "start", start, "end", end)

	if start.IsZero() && end.IsZero() {
		return s.extract.Places
	}

	filtered := []Place{}
	for _, p := range s.extract.Places {
		ts, err := time.Parse(time.RFC3339, p.Time)
		if err != nil {
			continue
		}
		if !start.IsZero() && ts.Before(start) {
			continue
		}
		if !end.IsZero() && ts.After(end) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Routes returns the extracted movements.
func (s *Service) Routes() []Route {
	return s.extract.Routes
}
