package metrics

import (
	"log/slog"
	"strconv"

	"cuebox/src/dj"
)

// Service computes catalog statistics over the loaded collection.
type Service struct {
	collection dj.Collection
}

// NewService creates a new metrics service.
func NewService(collection dj.Collection) *Service {
	return &Service{collection: collection}
}

// CollectionStats is the aggregate view rendered by the metrics overview.
type CollectionStats struct {
	TotalTracks   int
	TracksWithBPM int
	TracksWithKey int
	TotalCues     int
	TotalMemory   int
	Genres        map[string]int
	Years         map[string]int
	Kinds         map[string]int
}

// GetCollectionStats walks the track listing once and aggregates the
// distributions.
func (s *Service) GetCollectionStats() CollectionStats {
	slog.Debug("GetCollectionStats service called")

	stats := CollectionStats{
		Genres: make(map[string]int),
		Years:  make(map[string]int),
		Kinds:  make(map[string]int),
	}
	for _, t := range s.collection.Tracks() {
		stats.TotalTracks++
		if t.AverageBPM != dj.Unknown {
			stats.TracksWithBPM++
		}
		if t.Tonality != "" {
			stats.TracksWithKey++
		}
		for _, m := range t.PositionMarks {
			if m.IsCue() {
				stats.TotalCues++
			} else {
				stats.TotalMemory++
			}
		}

		genre := t.Genre
		if genre == "" {
			genre = "Unknown"
		}
		stats.Genres[genre]++

		if t.Year != dj.Unknown {
			stats.Years[strconv.Itoa(t.Year)]++
		}

		kind := t.Kind
		if kind == "" {
			kind = "Unknown"
		}
		stats.Kinds[kind]++
	}

	slog.Debug("GetCollectionStats completed", "tracks", stats.TotalTracks)
	return stats
}
