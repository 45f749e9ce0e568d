package collection

import (
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"os"
	"strconv"

	"cuebox/src/dj"
)

// Store is an immutable in-memory index over one parsed collection export.
// A Store is built once by Load/Parse and never mutated; reloads build a new
// Store and swap it in at the service layer.
type Store struct {
	product dj.Product
	tracks  []*dj.Track
	byID    map[string]*dj.Track
}

// xmlDocument mirrors the DJ_PLAYLISTS export schema. Every attribute is
// optional; missing attributes decode to the zero string and are defaulted
// during the mapping pass.
type xmlDocument struct {
	XMLName    xml.Name       `xml:"DJ_PLAYLISTS"`
	Product    *xmlProduct    `xml:"PRODUCT"`
	Collection *xmlCollection `xml:"COLLECTION"`
}

type xmlProduct struct {
	Name    string `xml:"Name,attr"`
	Version string `xml:"Version,attr"`
	Company string `xml:"Company,attr"`
}

type xmlCollection struct {
	Tracks []xmlTrack `xml:"TRACK"`
}

type xmlTrack struct {
	TrackID     string `xml:"TrackID,attr"`
	Name        string `xml:"Name,attr"`
	Artist      string `xml:"Artist,attr"`
	Composer    string `xml:"Composer,attr"`
	Album       string `xml:"Album,attr"`
	Grouping    string `xml:"Grouping,attr"`
	Genre       string `xml:"Genre,attr"`
	Kind        string `xml:"Kind,attr"`
	Size        string `xml:"Size,attr"`
	TotalTime   string `xml:"TotalTime,attr"`
	DiscNumber  string `xml:"DiscNumber,attr"`
	TrackNumber string `xml:"TrackNumber,attr"`
	Year        string `xml:"Year,attr"`
	AverageBpm  string `xml:"AverageBpm,attr"`
	DateAdded   string `xml:"DateAdded,attr"`
	BitRate     string `xml:"BitRate,attr"`
	SampleRate  string `xml:"SampleRate,attr"`
	Comments    string `xml:"Comments,attr"`
	PlayCount   string `xml:"PlayCount,attr"`
	Rating      string `xml:"Rating,attr"`
	Location    string `xml:"Location,attr"`
	Remixer     string `xml:"Remixer,attr"`
	Tonality    string `xml:"Tonality,attr"`
	Label       string `xml:"Label,attr"`
	Mix         string `xml:"Mix,attr"`

	Tempos []xmlTempo        `xml:"TEMPO"`
	Marks  []xmlPositionMark `xml:"POSITION_MARK"`
}

type xmlTempo struct {
	Inizio  string `xml:"Inizio,attr"`
	Bpm     string `xml:"Bpm,attr"`
	Metro   string `xml:"Metro,attr"`
	Battito string `xml:"Battito,attr"`
}

type xmlPositionMark struct {
	Name  string `xml:"Name,attr"`
	Type  string `xml:"Type,attr"`
	Start string `xml:"Start,attr"`
	Num   string `xml:"Num,attr"`
	Red   string `xml:"Red,attr"`
	Green string `xml:"Green,attr"`
	Blue  string `xml:"Blue,attr"`
}

// Load reads and parses the collection export at path.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection %s: %w", path, err)
	}
	defer f.Close()

	store, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse collection %s: %w", path, err)
	}
	return store, nil
}

// Parse decodes a collection export. A document without a COLLECTION element
// yields an empty Store rather than an error; only malformed XML fails.
func Parse(r io.Reader) (*Store, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	store := &Store{byID: make(map[string]*dj.Track)}
	if doc.Product != nil {
		store.product = dj.Product{
			Name:    doc.Product.Name,
			Version: doc.Product.Version,
			Company: doc.Product.Company,
		}
	}
	if doc.Collection == nil {
		return store, nil
	}

	store.tracks = make([]*dj.Track, 0, len(doc.Collection.Tracks))
	for _, xt := range doc.Collection.Tracks {
		track := mapTrack(xt)
		store.tracks = append(store.tracks, track)
		if _, dup := store.byID[track.ID]; !dup {
			store.byID[track.ID] = track
		}
	}
	return store, nil
}

// mapTrack is the single deterministic pass from the attribute bag to the
// typed record. Rekordbox double-escapes the descriptive text fields, so
// they get one more round of entity unescaping on top of the XML decoder's.
func mapTrack(xt xmlTrack) *dj.Track {
	track := &dj.Track{
		ID:       xt.TrackID,
		Title:    html.UnescapeString(xt.Name),
		Artist:   html.UnescapeString(xt.Artist),
		Composer: html.UnescapeString(xt.Composer),
		Album:    html.UnescapeString(xt.Album),
		Grouping: xt.Grouping,
		Genre:    xt.Genre,
		Kind:     xt.Kind,
		Label:    xt.Label,
		Remixer:  xt.Remixer,
		Tonality: xt.Tonality,
		Mix:      xt.Mix,
		Comments: xt.Comments,

		Size:        attrInt64(xt.Size),
		TotalTime:   attrInt(xt.TotalTime),
		DiscNumber:  attrInt(xt.DiscNumber),
		TrackNumber: attrInt(xt.TrackNumber),
		Year:        attrInt(xt.Year),
		AverageBPM:  attrFloat(xt.AverageBpm),
		BitRate:     attrInt(xt.BitRate),
		SampleRate:  attrInt(xt.SampleRate),
		PlayCount:   attrInt(xt.PlayCount),
		Rating:      attrInt(xt.Rating),

		DateAdded: xt.DateAdded,
		Location:  xt.Location,

		TempoMarkers:  make([]dj.TempoMarker, 0, len(xt.Tempos)),
		PositionMarks: make([]dj.PositionMark, 0, len(xt.Marks)),
	}

	for _, xm := range xt.Tempos {
		track.TempoMarkers = append(track.TempoMarkers, dj.TempoMarker{
			Offset: attrFloat(xm.Inizio),
			BPM:    attrFloat(xm.Bpm),
			Meter:  xm.Metro,
			Beat:   attrInt(xm.Battito),
		})
	}
	for _, xm := range xt.Marks {
		track.PositionMarks = append(track.PositionMarks, dj.PositionMark{
			Name:   xm.Name,
			Kind:   attrInt(xm.Type),
			Offset: attrFloat(xm.Start),
			Num:    attrInt(xm.Num),
			Color:  attrColor(xm.Red, xm.Green, xm.Blue),
		})
	}
	return track
}

// attrInt coerces a numeric attribute, falling back to the Unknown sentinel
// instead of failing the track.
func attrInt(s string) int {
	if s == "" {
		return dj.Unknown
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return dj.Unknown
	}
	return n
}

func attrInt64(s string) int64 {
	if s == "" {
		return dj.Unknown
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return dj.Unknown
	}
	return n
}

func attrFloat(s string) float64 {
	if s == "" {
		return dj.Unknown
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return dj.Unknown
	}
	return f
}

// attrColor builds the RGB triple of a cue point. Rekordbox writes either all
// three channels or none; a partial triple counts as absent.
func attrColor(red, green, blue string) *dj.Color {
	if red == "" || green == "" || blue == "" {
		return nil
	}
	r, errR := strconv.Atoi(red)
	g, errG := strconv.Atoi(green)
	b, errB := strconv.Atoi(blue)
	if errR != nil || errG != nil || errB != nil {
		return nil
	}
	return &dj.Color{Red: r, Green: g, Blue: b}
}

// GetTrack returns the first track carrying the given ID, or nil.
func (s *Store) GetTrack(id string) *dj.Track {
	return s.byID[id]
}

// Tracks returns the listing in document order. Callers must not mutate the
// returned tracks.
func (s *Store) Tracks() []*dj.Track {
	return s.tracks
}

// SearchByName returns the tracks whose title contains text.
func (s *Store) SearchByName(text string) []*dj.Track {
	matches := []*dj.Track{}
	for _, t := range s.tracks {
		if t.MatchesTitle(text) {
			matches = append(matches, t)
		}
	}
	return matches
}

// SearchByArtist returns the tracks whose artist contains text.
func (s *Store) SearchByArtist(text string) []*dj.Track {
	matches := []*dj.Track{}
	for _, t := range s.tracks {
		if t.MatchesArtist(text) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Product returns the PRODUCT header of the export.
func (s *Store) Product() dj.Product {
	return s.product
}
