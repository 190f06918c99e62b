package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/quizdeck/backend/internal/domain/progress"
	"github.com/quizdeck/backend/internal/store"
)

func newTestStore(t *testing.T) (*store.SQLiteStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "progress.db")
	s, err := store.NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, dbPath
}

func TestRead_EmptyStore(t *testing.T) {
	s, _ := newTestStore(t)

	snap, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snap.Answered)
	assert.Empty(t, snap.Answered)
}

func TestRecordAnswer_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "progress.db")

	s, err := store.NewSQLite(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.RecordAnswer(context.Background(), "1", "B", true))
	require.NoError(t, s.Close())

	reopened, err := store.NewSQLite(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	snap, err := reopened.Read(context.Background())
	require.NoError(t, err)

	rec, ok := snap.Record("1")
	require.True(t, ok)
	assert.Equal(t, progress.AnswerRecord{Chosen: "B", Correct: true}, rec)
}

func TestRecordAnswer_IdempotentAndOverwriting(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// Identical repeated calls leave a single identical record.
	require.NoError(t, s.RecordAnswer(ctx, "3", "A", false))
	require.NoError(t, s.RecordAnswer(ctx, "3", "A", false))

	snap, err := s.Read(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Answered, 1)

	// A differing call replaces the record, it never accumulates.
	require.NoError(t, s.RecordAnswer(ctx, "3", "B", true))

	snap, err = s.Read(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Answered, 1)

	rec, _ := snap.Record("3")
	assert.Equal(t, progress.AnswerRecord{Chosen: "B", Correct: true}, rec)
}

func TestWrite_ReplacesWholesale(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordAnswer(ctx, "1", "A", true))
	require.NoError(t, s.RecordAnswer(ctx, "2", "B", false))

	replacement := progress.Empty()
	replacement.SetAnswer("9", "C", true)
	require.NoError(t, s.Write(ctx, replacement))

	snap, err := s.Read(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Answered, 1)
	_, ok := snap.Record("9")
	assert.True(t, ok)
}

func TestClear_SubsequentReadIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordAnswer(ctx, "1", "A", true))
	require.NoError(t, s.Clear(ctx))

	snap, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Answered)
}

func TestRead_CorruptValueIsEmptyProgress(t *testing.T) {
	s, dbPath := newTestStore(t)

	// Corrupt the durable value behind the store's back.
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(
		"INSERT INTO progress (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		"quizProgress_v2", `{"answered": {"1"`,
	)
	require.NoError(t, err)

	snap, err := s.Read(context.Background())
	require.NoError(t, err, "corruption is treated as no progress, not an error")
	assert.Empty(t, snap.Answered)

	// The store recovers on the next write.
	require.NoError(t, s.RecordAnswer(context.Background(), "1", "A", true))
	snap, err = s.Read(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Answered, 1)
}
