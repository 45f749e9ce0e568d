package tag

import (
	"context"
	"fmt"
	"os"

	"cuebox/src/features/analyze"

	"github.com/dhowden/tag"
)

// TagReader is an implementation of the analyze.TagReader interface that
// uses the dhowden/tag library.
type TagReader struct{}

// NewTagReader creates a new TagReader
func NewTagReader() analyze.TagReader {
	return &TagReader{}
}

// ReadFileTags reads embedded metadata from a music file.
func (r *TagReader) ReadFileTags(ctx context.Context, filePath string) (*analyze.FileTags, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	tags, err := tag.ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	return &analyze.FileTags{
		Title:  tags.Title(),
		Artist: tags.Artist(),
		Album:  tags.Album(),
		Genre:  tags.Genre(),
		Year:   tags.Year(),
	}, nil
}
