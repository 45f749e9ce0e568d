package analyze

import "context"

// FileTags is the metadata embedded in an audio file on disk.
type FileTags struct {
	Title  string
	Artist string
	Album  string
	Genre  string
	Year   int
}

// TagReader reads embedded metadata from an audio file.
type TagReader interface {
	ReadFileTags(ctx context.Context, filePath string) (*FileTags, error)
}
