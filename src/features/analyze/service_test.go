package analyze

import (
	"context"
	"errors"
	"testing"

	"cuebox/src/dj"
)

type collectionMock struct {
	dj.Collection
	tracks map[string]*dj.Track
}

func (m *collectionMock) GetTrack(id string) *dj.Track {
	return m.tracks[id]
}

type tagReaderMock struct {
	tags *FileTags
	err  error
}

func (m *tagReaderMock) ReadFileTags(ctx context.Context, filePath string) (*FileTags, error) {
	return m.tags, m.err
}

func fixtureCollection() *collectionMock {
	return &collectionMock{tracks: map[string]*dj.Track{
		"1": {
			ID:       "1",
			Title:    "oath sign",
			Artist:   "LiSA",
			Album:    "LOVER\"S\" MiLE",
			Genre:    "Anime",
			Year:     2011,
			Location: "file://localhost/Music/oath%20sign.m4a",
		},
		"2": {ID: "2", Title: "no file"},
	}}
}

func TestLocalPath(t *testing.T) {
	svc := NewService(fixtureCollection(), &tagReaderMock{})

	path, err := svc.LocalPath("1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != "/Music/oath sign.m4a" {
		t.Errorf("expected decoded local path, got %q", path)
	}
}

func TestLocalPathErrors(t *testing.T) {
	svc := NewService(fixtureCollection(), &tagReaderMock{})

	if _, err := svc.LocalPath("nope"); err == nil {
		t.Error("expected error for unknown track")
	}
	if _, err := svc.LocalPath("2"); err == nil {
		t.Error("expected error for track without a location")
	}
}

func TestVerifyMatches(t *testing.T) {
	tags := &tagReaderMock{tags: &FileTags{
		Title:  "Oath Sign",
		Artist: " LiSA ",
		Album:  "",
		Genre:  "Anime",
		Year:   2011,
	}}
	svc := NewService(fixtureCollection(), tags)

	report, err := svc.Verify(context.Background(), "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !report.Matches {
		t.Errorf("expected case and space differences to be ignored, got diffs %+v", report.Diffs)
	}
	if report.Path != "/Music/oath sign.m4a" {
		t.Errorf("unexpected report path: %q", report.Path)
	}
}

func TestVerifyReportsDiffs(t *testing.T) {
	tags := &tagReaderMock{tags: &FileTags{
		Title:  "oath sign",
		Artist: "Somebody Else",
		Genre:  "Anime",
		Year:   2012,
	}}
	svc := NewService(fixtureCollection(), tags)

	report, err := svc.Verify(context.Background(), "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Matches {
		t.Fatal("expected disagreements to be reported")
	}
	if len(report.Diffs) != 2 {
		t.Fatalf("expected 2 diffs, got %+v", report.Diffs)
	}
	if report.Diffs[0].Field != "artist" || report.Diffs[0].File != "Somebody Else" {
		t.Errorf("unexpected first diff: %+v", report.Diffs[0])
	}
	if report.Diffs[1].Field != "year" || report.Diffs[1].Catalog != "2011" {
		t.Errorf("unexpected second diff: %+v", report.Diffs[1])
	}
}

func TestVerifyTagReadFailure(t *testing.T) {
	tags := &tagReaderMock{err: errors.New("unsupported format")}
	svc := NewService(fixtureCollection(), tags)

	if _, err := svc.Verify(context.Background(), "1"); err == nil {
		t.Fatal("expected tag reader error to propagate")
	}
}

func TestVerifyUnknownTrack(t *testing.T) {
	svc := NewService(fixtureCollection(), &tagReaderMock{})
	if _, err := svc.Verify(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for unknown track")
	}
}
