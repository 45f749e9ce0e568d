package collection

import (
	"strings"
	"testing"

	"cuebox/src/dj"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<DJ_PLAYLISTS Version="1.0.0">
  <PRODUCT Name="rekordbox" Version="6.7.4" Company="AlphaTheta"/>
  <COLLECTION Entries="3">
    <TRACK TrackID="109686241" Name="oath sign" Artist="LiSA" Composer="" Album="LOVER&amp;quot;S&amp;quot; MiLE"
           Genre="Anime" Kind="M4A File" Size="8734502" TotalTime="245" DiscNumber="1" TrackNumber="2"
           Year="2011" AverageBpm="175.00" DateAdded="2023-01-15" BitRate="256" SampleRate="44100"
           Comments="opening" PlayCount="12" Rating="4" Remixer="" Tonality="Am" Label="Aniplex" Mix=""
           Location="file://localhost/Volumes/NO%20NAME/iTunes/02%20oath%20sign.m4a">
      <TEMPO Inizio="0.025" Bpm="175.00" Metro="4/4" Battito="1"/>
      <TEMPO Inizio="120.5" Bpm="87.50" Metro="4/4" Battito="3"/>
      <POSITION_MARK Name="intro" Type="0" Start="0.025" Num="0" Red="230" Green="40" Blue="40"/>
      <POSITION_MARK Name="" Type="0" Start="60.0" Num="-1"/>
    </TRACK>
    <TRACK TrackID="2" Name="A &amp;amp; B" Artist="Sonny &amp; Cher"
           Location="/Music/c d.m4a"/>
    <TRACK TrackID="3" Name="Untitled"/>
  </COLLECTION>
</DJ_PLAYLISTS>`

func loadSample(t *testing.T) *Store {
	t.Helper()
	store, err := Parse(strings.NewReader(sampleXML))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return store
}

func TestParseTypedFields(t *testing.T) {
	store := loadSample(t)

	track := store.GetTrack("109686241")
	if track == nil {
		t.Fatal("expected track 109686241 to be present")
	}
	if track.Title != "oath sign" {
		t.Errorf("expected title 'oath sign', got %q", track.Title)
	}
	if track.Artist != "LiSA" {
		t.Errorf("expected artist 'LiSA', got %q", track.Artist)
	}
	if track.Size != 8734502 {
		t.Errorf("expected size 8734502, got %d", track.Size)
	}
	if track.TotalTime != 245 {
		t.Errorf("expected total time 245, got %d", track.TotalTime)
	}
	if track.AverageBPM != 175.0 {
		t.Errorf("expected BPM 175.00, got %f", track.AverageBPM)
	}
	if track.Rating != 4 {
		t.Errorf("expected rating 4, got %d", track.Rating)
	}
	if track.DateAdded != "2023-01-15" {
		t.Errorf("expected date added kept verbatim, got %q", track.DateAdded)
	}
	if track.Location != "file://localhost/Volumes/NO%20NAME/iTunes/02%20oath%20sign.m4a" {
		t.Errorf("expected location kept in native encoding, got %q", track.Location)
	}
}

func TestParseUnescapesDoubleEscapedText(t *testing.T) {
	store := loadSample(t)

	// rekordbox writes &amp;amp; for a literal ampersand: once for XML,
	// once for HTML.
	track := store.GetTrack("2")
	if track == nil {
		t.Fatal("expected track 2 to be present")
	}
	if track.Title != "A & B" {
		t.Errorf("expected title 'A & B', got %q", track.Title)
	}
	if track.Artist != "Sonny & Cher" {
		t.Errorf("expected artist 'Sonny & Cher', got %q", track.Artist)
	}

	first := store.GetTrack("109686241")
	if first.Album != `LOVER"S" MiLE` {
		t.Errorf("expected album double-unescaped, got %q", first.Album)
	}
}

func TestParseDefaultsMissingAttributes(t *testing.T) {
	store := loadSample(t)

	track := store.GetTrack("3")
	if track == nil {
		t.Fatal("expected sparse track to still be present")
	}
	if track.Artist != "" || track.Album != "" || track.Location != "" {
		t.Errorf("expected missing text fields to default to empty, got %+v", track)
	}
	if track.Size != dj.Unknown {
		t.Errorf("expected unknown size sentinel, got %d", track.Size)
	}
	if track.Year != dj.Unknown {
		t.Errorf("expected unknown year sentinel, got %d", track.Year)
	}
	if track.AverageBPM != dj.Unknown {
		t.Errorf("expected unknown BPM sentinel, got %f", track.AverageBPM)
	}
	if len(track.TempoMarkers) != 0 || len(track.PositionMarks) != 0 {
		t.Errorf("expected empty marker sequences, got %+v", track)
	}
}

func TestParseInvalidNumericAttributeIsRecovered(t *testing.T) {
	xml := `<DJ_PLAYLISTS><COLLECTION>
		<TRACK TrackID="1" Name="t" Year="twenty" AverageBpm="fast"/>
	</COLLECTION></DJ_PLAYLISTS>`
	store, err := Parse(strings.NewReader(xml))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	track := store.GetTrack("1")
	if track == nil {
		t.Fatal("expected track to survive bad numeric attributes")
	}
	if track.Year != dj.Unknown || track.AverageBPM != dj.Unknown {
		t.Errorf("expected sentinels for uncoercible fields, got year=%d bpm=%f", track.Year, track.AverageBPM)
	}
}

func TestParseMarkersKeepDocumentOrder(t *testing.T) {
	store := loadSample(t)

	track := store.GetTrack("109686241")
	if len(track.TempoMarkers) != 2 {
		t.Fatalf("expected 2 tempo markers, got %d", len(track.TempoMarkers))
	}
	if track.TempoMarkers[0].Offset != 0.025 || track.TempoMarkers[1].Offset != 120.5 {
		t.Errorf("tempo markers out of document order: %+v", track.TempoMarkers)
	}
	if track.TempoMarkers[0].Meter != "4/4" || track.TempoMarkers[0].Beat != 1 {
		t.Errorf("unexpected first tempo marker: %+v", track.TempoMarkers[0])
	}

	if len(track.PositionMarks) != 2 {
		t.Fatalf("expected 2 position marks, got %d", len(track.PositionMarks))
	}
	cue := track.PositionMarks[0]
	if !cue.IsCue() || cue.Num != 0 {
		t.Errorf("expected first mark to be cue 0, got %+v", cue)
	}
	if cue.Color == nil || cue.Color.Red != 230 || cue.Color.Green != 40 || cue.Color.Blue != 40 {
		t.Errorf("expected cue color 230/40/40, got %+v", cue.Color)
	}
	memory := track.PositionMarks[1]
	if memory.IsCue() {
		t.Errorf("expected second mark to be a memory cue, got %+v", memory)
	}
	if memory.Color != nil {
		t.Errorf("expected no color on memory cue, got %+v", memory.Color)
	}
}

func TestParseMissingCollectionIsTolerated(t *testing.T) {
	store, err := Parse(strings.NewReader(`<DJ_PLAYLISTS Version="1.0.0"></DJ_PLAYLISTS>`))
	if err != nil {
		t.Fatalf("expected missing COLLECTION to be tolerated, got %v", err)
	}
	if len(store.Tracks()) != 0 {
		t.Errorf("expected empty listing, got %d tracks", len(store.Tracks()))
	}
	if store.GetTrack("anything") != nil {
		t.Error("expected lookups on empty store to return nil")
	}
	if got := store.SearchByName(""); len(got) != 0 {
		t.Errorf("expected empty search results, got %d", len(got))
	}
}

func TestParseMalformedDocumentFails(t *testing.T) {
	if _, err := Parse(strings.NewReader("<DJ_PLAYLISTS><COLLECTION>")); err == nil {
		t.Fatal("expected malformed XML to fail the parse")
	}
}

func TestGetTrackByID(t *testing.T) {
	store := loadSample(t)

	for _, want := range store.Tracks() {
		got := store.GetTrack(want.ID)
		if got != want {
			t.Errorf("GetTrack(%q) returned a different track", want.ID)
		}
	}
	if store.GetTrack("nope") != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestSearchByName(t *testing.T) {
	store := loadSample(t)

	got := store.SearchByName("OATH")
	if len(got) != 1 || got[0].ID != "109686241" {
		t.Fatalf("expected case-insensitive title match, got %+v", got)
	}

	// Empty text matches everything
	if got := store.SearchByName(""); len(got) != 3 {
		t.Errorf("expected all tracks for empty search, got %d", len(got))
	}
}

func TestSearchByArtist(t *testing.T) {
	store := loadSample(t)

	got := store.SearchByArtist("lisa")
	if len(got) != 1 || got[0].ID != "109686241" {
		t.Fatalf("expected case-insensitive artist match, got %+v", got)
	}

	// Tracks without an artist compare as empty string and still match ""
	if got := store.SearchByArtist(""); len(got) != 3 {
		t.Errorf("expected all tracks for empty search, got %d", len(got))
	}
}

func TestParseProduct(t *testing.T) {
	store := loadSample(t)

	product := store.Product()
	if product.Name != "rekordbox" || product.Version != "6.7.4" || product.Company != "AlphaTheta" {
		t.Errorf("unexpected product header: %+v", product)
	}
}
