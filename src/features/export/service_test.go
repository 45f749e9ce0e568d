package export

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"cuebox/src/dj"
	"cuebox/src/features/config"
)

type collectionMock struct {
	dj.Collection
	product dj.Product
	tracks  []*dj.Track
}

func (m *collectionMock) Product() dj.Product { return m.product }
func (m *collectionMock) Tracks() []*dj.Track { return m.tracks }

type writerMock struct {
	path   string
	tracks int
	err    error
}

func (m *writerMock) WriteSnapshot(ctx context.Context, path string, product dj.Product, tracks []*dj.Track) error {
	m.path = path
	m.tracks = len(tracks)
	return m.err
}

func testService(writer *writerMock) (*Service, *collectionMock) {
	collection := &collectionMock{
		product: dj.Product{Name: "rekordbox", Version: "6.7.4"},
		tracks:  []*dj.Track{{ID: "1"}, {ID: "2"}},
	}
	manager := config.NewManager(&config.Config{SnapshotPath: "/tmp/snapshots"})
	return NewService(collection, writer, manager), collection
}

func TestSnapshot(t *testing.T) {
	writer := &writerMock{}
	svc, collection := testService(writer)

	info, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if info.Tracks != len(collection.tracks) {
		t.Errorf("expected %d tracks, got %d", len(collection.tracks), info.Tracks)
	}
	if writer.tracks != len(collection.tracks) {
		t.Errorf("expected writer to receive the full listing, got %d", writer.tracks)
	}
	if info.Path != writer.path {
		t.Errorf("expected reported path %q to match written path %q", info.Path, writer.path)
	}
	if filepath.Dir(info.Path) != "/tmp/snapshots" {
		t.Errorf("expected snapshot under the configured directory, got %q", info.Path)
	}

	name := filepath.Base(info.Path)
	if !strings.HasPrefix(name, "rekordbox-") || !strings.HasSuffix(name, ".db") {
		t.Errorf("unexpected snapshot file name: %q", name)
	}
	if !strings.Contains(name, info.ID[:8]) {
		t.Errorf("expected file name to carry the snapshot ID prefix, got %q", name)
	}
}

func TestSnapshotWriterFailure(t *testing.T) {
	writer := &writerMock{err: errors.New("disk full")}
	svc, _ := testService(writer)

	if _, err := svc.Snapshot(context.Background()); err == nil {
		t.Fatal("expected writer error to propagate")
	}
}

func TestSnapshotSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"rekordbox", "rekordbox"},
		{"Pioneer DJ  Pro", "pioneer-dj-pro"},
		{"rékordbox", "rekordbox"},
		{"", "collection"},
		{"   ", "collection"},
	}
	for _, c := range cases {
		if got := snapshotSlug(c.in); got != c.want {
			t.Errorf("snapshotSlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
