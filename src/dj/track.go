package dj

import (
	"fmt"
	"strings"
)

// Unknown is the sentinel for numeric attributes that are absent from the
// export or could not be coerced to a number.
const Unknown = -1

// Track represents a single catalog entry of a rekordbox collection export.
// Tracks are built once at load time and never mutated afterwards.
type Track struct {
	ID       string
	Title    string
	Artist   string
	Composer string
	Album    string
	Grouping string
	Genre    string
	Kind     string
	Label    string
	Remixer  string
	Tonality string
	Mix      string
	Comments string

	Size        int64
	TotalTime   int // seconds
	DiscNumber  int
	TrackNumber int
	Year        int
	AverageBPM  float64
	BitRate     int // kbps
	SampleRate  int // Hz
	PlayCount   int
	Rating      int // 0-5

	// DateAdded is kept as the opaque string rekordbox writes (YYYY-MM-DD).
	DateAdded string

	// Location is the file path exactly as it appears in the export. It may
	// be percent-encoded and may or may not carry the file://localhost
	// prefix; the resolver normalizes it at comparison time.
	Location string

	TempoMarkers  []TempoMarker
	PositionMarks []PositionMark
}

// TempoMarker declares the BPM and meter at a point of the beat grid.
type TempoMarker struct {
	Offset float64 // seconds from the start of the track
	BPM    float64
	Meter  string // e.g. "4/4"
	Beat   int
}

// PositionMark is a named point within a track's timeline, either a numbered
// cue point or an unindexed memory cue.
type PositionMark struct {
	Name   string
	Kind   int
	Offset float64 // seconds
	Num    int     // cue number; Unknown for memory cues
	Color  *Color
}

// Color is the RGB triple rekordbox assigns to numbered cue points.
type Color struct {
	Red   int
	Green int
	Blue  int
}

// IsCue reports whether the mark is a numbered cue point rather than a
// memory cue.
func (m PositionMark) IsCue() bool {
	return m.Num >= 0
}

// DisplayTitle returns "Artist - Title" with sensible fallbacks for tracks
// that are missing either field.
func (t *Track) DisplayTitle() string {
	switch {
	case t.Artist == "" && t.Title == "":
		return t.ID
	case t.Artist == "":
		return t.Title
	case t.Title == "":
		return t.Artist
	}
	return fmt.Sprintf("%s - %s", t.Artist, t.Title)
}

// CuePoints returns the numbered cue points in document order.
func (t *Track) CuePoints() []PositionMark {
	var cues []PositionMark
	for _, m := range t.PositionMarks {
		if m.IsCue() {
			cues = append(cues, m)
		}
	}
	return cues
}

// MemoryCues returns the unindexed memory cues in document order.
func (t *Track) MemoryCues() []PositionMark {
	var cues []PositionMark
	for _, m := range t.PositionMarks {
		if !m.IsCue() {
			cues = append(cues, m)
		}
	}
	return cues
}

// MatchesTitle reports whether the track title contains text,
// case-insensitively. An empty text matches every track.
func (t *Track) MatchesTitle(text string) bool {
	return strings.Contains(strings.ToLower(t.Title), strings.ToLower(text))
}

// MatchesArtist reports whether the track artist contains text,
// case-insensitively. An empty text matches every track.
func (t *Track) MatchesArtist(text string) bool {
	return strings.Contains(strings.ToLower(t.Artist), strings.ToLower(text))
}
