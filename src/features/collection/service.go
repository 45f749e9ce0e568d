package collection

import (
	"log/slog"
	"strings"
	"sync"

	"cuebox/src/dj"
	"cuebox/src/features/metrics"

	"github.com/adrg/strutil"
	stringmetrics "github.com/adrg/strutil/metrics"
)

// closestMatchThreshold is the minimum Jaro-Winkler similarity for a fuzzy
// search hit.
const closestMatchThreshold = 0.85

// Service is the domain service for the collection feature. It owns the
// current Store and swaps it atomically on reload, so readers always see a
// fully built listing.
type Service struct {
	mu    sync.RWMutex
	path  string
	store *Store
}

// NewService loads the collection export at path and returns the service.
func NewService(path string) (*Service, error) {
	store, err := Load(path)
	if err != nil {
		return nil, err
	}
	metrics.CollectionTracksLoaded.Set(float64(len(store.Tracks())))
	slog.Info("Collection loaded", "path", path, "tracks", len(store.Tracks()))
	return &Service{path: path, store: store}, nil
}

// Reload re-parses the export and swaps the store. The previous listing
// stays visible until the new one is fully built.
func (s *Service) Reload() error {
	slog.Debug("Reload service called", "path", s.path)
	store, err := Load(s.path)
	if err != nil {
		slog.Error("Reload failed", "path", s.path, "error", err)
		metrics.CollectionReloadsTotal.WithLabelValues("error").Inc()
		return err
	}

	s.mu.Lock()
	s.store = store
	s.mu.Unlock()

	metrics.CollectionReloadsTotal.WithLabelValues("success").Inc()
	metrics.CollectionTracksLoaded.Set(float64(len(store.Tracks())))
	slog.Info("Collection reloaded", "path", s.path, "tracks", len(store.Tracks()))
	return nil
}

// Path returns the export file the service was loaded from.
func (s *Service) Path() string {
	return s.path
}

func (s *Service) current() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

// GetTrack returns the track with the given ID, or nil.
func (s *Service) GetTrack(id string) *dj.Track {
	slog.Debug("GetTrack service called", "id", id)
	return s.current().GetTrack(id)
}

// Tracks returns the full listing in document order.
func (s *Service) Tracks() []*dj.Track {
	return s.current().Tracks()
}

// TracksPaginated returns a window of the listing for table rendering.
func (s *Service) TracksPaginated(limit, offset int) []*dj.Track {
	tracks := s.current().Tracks()
	if offset < 0 || offset >= len(tracks) {
		return []*dj.Track{}
	}
	end := offset + limit
	if limit <= 0 || end > len(tracks) {
		end = len(tracks)
	}
	return tracks[offset:end]
}

// SearchByName returns the tracks whose title contains text.
func (s *Service) SearchByName(text string) []*dj.Track {
	slog.Debug("SearchByName service called", "text", text)
	tracks := s.current().SearchByName(text)
	slog.Debug("SearchByName completed", "text", text, "count", len(tracks))
	return tracks
}

// SearchByArtist returns the tracks whose artist contains text.
func (s *Service) SearchByArtist(text string) []*dj.Track {
	slog.Debug("SearchByArtist service called", "text", text)
	tracks := s.current().SearchByArtist(text)
	slog.Debug("SearchByArtist completed", "text", text, "count", len(tracks))
	return tracks
}

// FindClosest returns the track whose "artist title" string is most similar
// to the query, or nil when nothing clears the similarity threshold. It
// supplements the exact substring searches for misspelled queries.
func (s *Service) FindClosest(query string) (*dj.Track, float64) {
	slog.Debug("FindClosest service called", "query", query)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, 0
	}

	jw := stringmetrics.NewJaroWinkler()
	var best *dj.Track
	var bestScore float64
	for _, t := range s.current().Tracks() {
		candidate := strings.ToLower(strings.TrimSpace(t.Artist + " " + t.Title))
		score := strutil.Similarity(query, candidate, jw)
		if score > bestScore && score >= closestMatchThreshold {
			bestScore = score
			best = t
		}
	}
	if best != nil {
		slog.Debug("FindClosest completed", "query", query, "track", best.ID, "score", bestScore)
	}
	return best, bestScore
}

// Product returns the PRODUCT header of the export.
func (s *Service) Product() dj.Product {
	return s.current().Product()
}

var _ dj.Collection = (*Service)(nil)
