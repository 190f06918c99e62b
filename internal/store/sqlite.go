// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"

	"github.com/quizdeck/backend/internal/domain/progress"
)

// progressKey is the fixed, versioned key the whole progress snapshot lives
// under. Bump the version when the snapshot shape changes.
const progressKey = "quizProgress_v2"

const schema = `
CREATE TABLE IF NOT EXISTS progress (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLiteStore is the durable key-value medium behind the progress snapshot.
// The snapshot is persisted as a single JSON value: reads return the whole
// snapshot, writes replace it wholesale, and merging is the caller's job.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Read returns the persisted snapshot. An absent or malformed value is
// treated as "no progress", never as an error the user sees.
func (s *SQLiteStore) Read(ctx context.Context) (progress.Snapshot, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM progress WHERE key = ?", progressKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.Empty(), nil
	}
	if err != nil {
		return progress.Snapshot{}, err
	}

	return progress.Decode([]byte(value)), nil
}

// Write fully replaces the durable value with the given snapshot.
func (s *SQLiteStore) Write(ctx context.Context, snap progress.Snapshot) error {
	value, err := snap.Encode()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO progress (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		progressKey, string(value),
	)
	return err
}

// RecordAnswer sets the record for one question id and persists the snapshot.
// Read-modify-write, last writer wins; the single-process deployment keeps at
// most one mutation in flight at a time.
func (s *SQLiteStore) RecordAnswer(ctx context.Context, id, chosen string, correct bool) error {
	snap, err := s.Read(ctx)
	if err != nil {
		return err
	}
	snap.SetAnswer(id, chosen, correct)
	return s.Write(ctx, snap)
}

// Clear deletes the durable record entirely; the next Read returns the empty
// default. Used by the explicit reset action.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM progress WHERE key = ?", progressKey)
	return err
}
