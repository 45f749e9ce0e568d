package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cuebox/src/dj"
	"cuebox/src/features/resolver"
)

// Service cross-checks catalog entries against the files they point at. It
// hands file-reading collaborators nothing but the decoded local path.
type Service struct {
	collection dj.Collection
	tags       TagReader
}

// NewService creates a new analyze service.
func NewService(collection dj.Collection, tags TagReader) *Service {
	return &Service{collection: collection, tags: tags}
}

// FieldDiff is one catalog/file disagreement found by Verify.
type FieldDiff struct {
	Field   string `json:"field"`
	Catalog string `json:"catalog"`
	File    string `json:"file"`
}

// VerifyReport is the outcome of checking one track against its file.
type VerifyReport struct {
	TrackID string      `json:"track_id"`
	Path    string      `json:"path"`
	Matches bool        `json:"matches"`
	Diffs   []FieldDiff `json:"diffs"`
}

// LocalPath returns the decoded filesystem path of a track. This is the
// input the signal-analysis side consumes.
func (s *Service) LocalPath(id string) (string, error) {
	slog.Debug("LocalPath service called", "id", id)

	track := s.collection.GetTrack(id)
	if track == nil {
		return "", fmt.Errorf("track %s not found", id)
	}
	if track.Location == "" {
		return "", fmt.Errorf("track %s has no location", id)
	}
	return resolver.DecodedPath(track.Location), nil
}

// Verify reads the embedded tags of a track's file and reports per-field
// disagreements with the catalog entry.
func (s *Service) Verify(ctx context.Context, id string) (*VerifyReport, error) {
	slog.Debug("Verify service called", "id", id)

	path, err := s.LocalPath(id)
	if err != nil {
		return nil, err
	}

	tags, err := s.tags.ReadFileTags(ctx, path)
	if err != nil {
		slog.Error("Verify failed to read file tags", "id", id, "path", path, "error", err)
		return nil, err
	}

	track := s.collection.GetTrack(id)
	report := &VerifyReport{TrackID: id, Path: path}
	report.Diffs = append(report.Diffs, diffField("title", track.Title, tags.Title)...)
	report.Diffs = append(report.Diffs, diffField("artist", track.Artist, tags.Artist)...)
	report.Diffs = append(report.Diffs, diffField("album", track.Album, tags.Album)...)
	report.Diffs = append(report.Diffs, diffField("genre", track.Genre, tags.Genre)...)
	if track.Year != dj.Unknown && tags.Year != 0 && track.Year != tags.Year {
		report.Diffs = append(report.Diffs, FieldDiff{
			Field:   "year",
			Catalog: fmt.Sprint(track.Year),
			File:    fmt.Sprint(tags.Year),
		})
	}
	report.Matches = len(report.Diffs) == 0

	slog.Debug("Verify completed", "id", id, "matches", report.Matches, "diffs", len(report.Diffs))
	return report, nil
}

// diffField compares one text field, ignoring case and surrounding space.
// An empty value on either side is not a disagreement.
func diffField(name, catalog, file string) []FieldDiff {
	if catalog == "" || file == "" {
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(catalog), strings.TrimSpace(file)) {
		return nil
	}
	return []FieldDiff{{Field: name, Catalog: catalog, File: file}}
}
