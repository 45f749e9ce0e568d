package export

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"cuebox/src/dj"
	"cuebox/src/features/config"
	"cuebox/src/features/metrics"

	"github.com/google/uuid"
	"github.com/gosimple/unidecode"
)

// SnapshotWriter persists a collection listing to a queryable file.
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, path string, product dj.Product, tracks []*dj.Track) error
}

// Service exports the loaded collection so external tools can query it. The
// export reads the listing; it never mutates it.
type Service struct {
	collection    dj.Collection
	writer        SnapshotWriter
	configManager *config.Manager
}

// NewService creates a new export service.
func NewService(collection dj.Collection, writer SnapshotWriter, cfgManager *config.Manager) *Service {
	return &Service{
		collection:    collection,
		writer:        writer,
		configManager: cfgManager,
	}
}

// SnapshotInfo describes one written snapshot.
type SnapshotInfo struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Tracks    int       `json:"tracks"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot writes the current listing into a new snapshot file under the
// configured snapshot directory.
func (s *Service) Snapshot(ctx context.Context) (*SnapshotInfo, error) {
	slog.Debug("Snapshot service called")

	id := uuid.New().String()
	tracks := s.collection.Tracks()
	product := s.collection.Product()

	filename := snapshotSlug(product.Name) + "-" + id[:8] + ".db"
	path := filepath.Join(s.configManager.Get().SnapshotPath, filename)

	if err := s.writer.WriteSnapshot(ctx, path, product, tracks); err != nil {
		slog.Error("Snapshot failed", "path", path, "error", err)
		metrics.SnapshotExportsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.SnapshotExportsTotal.WithLabelValues("success").Inc()
	slog.Info("Snapshot written", "path", path, "tracks", len(tracks))
	return &SnapshotInfo{
		ID:        id,
		Path:      path,
		Tracks:    len(tracks),
		CreatedAt: time.Now(),
	}, nil
}

// snapshotSlug turns the export's product name into a safe ASCII file-name
// prefix.
func snapshotSlug(name string) string {
	slug := strings.ToLower(unidecode.Unidecode(name))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		slug = "collection"
	}
	return slug
}
