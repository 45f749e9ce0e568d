package database

import (
	"context"
	"database/sql"
	"fmt"

	"cuebox/src/dj"

	_ "github.com/mattn/go-sqlite3"
)

// SqliteSnapshotWriter writes collection snapshots into SQLite files so the
// catalog can be queried outside the running process.
type SqliteSnapshotWriter struct{}

// NewSqliteSnapshotWriter creates a new SqliteSnapshotWriter.
func NewSqliteSnapshotWriter() *SqliteSnapshotWriter {
	return &SqliteSnapshotWriter{}
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS product (
			name TEXT,
			version TEXT,
			company TEXT
		);

		CREATE TABLE IF NOT EXISTS tracks (
			id TEXT PRIMARY KEY,
			title TEXT,
			artist TEXT,
			composer TEXT,
			album TEXT,
			grouping TEXT,
			genre TEXT,
			kind TEXT,
			label TEXT,
			remixer TEXT,
			tonality TEXT,
			mix TEXT,
			comments TEXT,
			size INTEGER,
			total_time INTEGER,
			disc_number INTEGER,
			track_number INTEGER,
			year INTEGER,
			average_bpm REAL,
			bit_rate INTEGER,
			sample_rate INTEGER,
			play_count INTEGER,
			rating INTEGER,
			date_added TEXT,
			location TEXT
		);

		CREATE TABLE IF NOT EXISTS tempo_markers (
			track_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			offset_seconds REAL,
			bpm REAL,
			meter TEXT,
			beat INTEGER,
			FOREIGN KEY (track_id) REFERENCES tracks (id)
		);

		CREATE TABLE IF NOT EXISTS position_marks (
			track_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT,
			kind INTEGER,
			offset_seconds REAL,
			num INTEGER,
			red INTEGER,
			green INTEGER,
			blue INTEGER,
			FOREIGN KEY (track_id) REFERENCES tracks (id)
		);
	`)
	return err
}

// WriteSnapshot writes the product header and the full track listing into a
// fresh SQLite file at path.
func (w *SqliteSnapshotWriter) WriteSnapshot(ctx context.Context, path string, product dj.Product, tracks []*dj.Track) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open snapshot database: %w", err)
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return fmt.Errorf("failed to create snapshot tables: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO product (name, version, company) VALUES (?, ?, ?)`,
		product.Name, product.Version, product.Company,
	); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	// Exports can carry duplicate TrackIDs; the first occurrence wins, same
	// as the in-memory index.
	trackStmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO tracks (
			id, title, artist, composer, album, grouping, genre, kind, label,
			remixer, tonality, mix, comments, size, total_time, disc_number,
			track_number, year, average_bpm, bit_rate, sample_rate, play_count,
			rating, date_added, location
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer trackStmt.Close()

	tempoStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tempo_markers (track_id, position, offset_seconds, bpm, meter, beat)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer tempoStmt.Close()

	markStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO position_marks (track_id, position, name, kind, offset_seconds, num, red, green, blue)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer markStmt.Close()

	for _, t := range tracks {
		res, err := trackStmt.ExecContext(ctx,
			t.ID, t.Title, t.Artist, t.Composer, t.Album, t.Grouping, t.Genre,
			t.Kind, t.Label, t.Remixer, t.Tonality, t.Mix, t.Comments,
			t.Size, t.TotalTime, t.DiscNumber, t.TrackNumber, t.Year,
			t.AverageBPM, t.BitRate, t.SampleRate, t.PlayCount, t.Rating,
			t.DateAdded, t.Location,
		)
		if err != nil {
			return fmt.Errorf("failed to insert track %s: %w", t.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			continue
		}

		for i, m := range t.TempoMarkers {
			if _, err := tempoStmt.ExecContext(ctx, t.ID, i, m.Offset, m.BPM, m.Meter, m.Beat); err != nil {
				return fmt.Errorf("failed to insert tempo marker for track %s: %w", t.ID, err)
			}
		}
		for i, m := range t.PositionMarks {
			var red, green, blue interface{}
			if m.Color != nil {
				red, green, blue = m.Color.Red, m.Color.Green, m.Color.Blue
			}
			if _, err := markStmt.ExecContext(ctx, t.ID, i, m.Name, m.Kind, m.Offset, m.Num, red, green, blue); err != nil {
				return fmt.Errorf("failed to insert position mark for track %s: %w", t.ID, err)
			}
		}
	}

	return tx.Commit()
}
