package resolver

import (
	"log/slog"
	"time"

	"cuebox/src/dj"
	"cuebox/src/features/metrics"
)

// Service resolves file paths against the loaded collection.
type Service struct {
	collection dj.Collection
}

// NewService creates a new resolver service.
func NewService(collection dj.Collection) *Service {
	return &Service{collection: collection}
}

// Resolve returns the track whose location denotes the same file as path, or
// nil. Absence of a match is a normal outcome, not an error.
func (s *Service) Resolve(path string) *dj.Track {
	slog.Debug("Resolve service called", "path", path)

	start := time.Now()
	track := Resolve(path, s.collection.Tracks())
	metrics.ResolveDuration.Observe(time.Since(start).Seconds())

	if track == nil {
		metrics.ResolveRequestsTotal.WithLabelValues("no_match").Inc()
		slog.Debug("Resolve completed without a match", "path", path)
		return nil
	}
	metrics.ResolveRequestsTotal.WithLabelValues("match").Inc()
	slog.Debug("Resolve completed", "path", path, "track", track.ID)
	return track
}

// LocalPath returns the decoded filesystem path of a track's location. This
// is the only thing the signal-analysis side consumes.
func (s *Service) LocalPath(track *dj.Track) string {
	return DecodedPath(track.Location)
}
