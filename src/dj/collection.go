package dj

// Product identifies the software that wrote the collection export.
type Product struct {
	Name    string
	Version string
	Company string
}

// Collection is the read-only view over a loaded collection export.
// It's our primary repository interface for the catalog domain; the listing
// is immutable after load, so implementations may be shared freely across
// goroutines.
type Collection interface {
	// GetTrack returns the track with the given ID, or nil when no track
	// carries it.
	GetTrack(id string) *Track
	// Tracks returns the full listing in document order.
	Tracks() []*Track
	// SearchByName returns every track whose title contains text,
	// case-insensitively. Empty text matches everything.
	SearchByName(text string) []*Track
	// SearchByArtist returns every track whose artist contains text,
	// case-insensitively. Empty text matches everything.
	SearchByArtist(text string) []*Track
	// Product returns the PRODUCT header of the export.
	Product() Product
}
