package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mflix-insights/movie"
	"mflix-insights/movie/movietest"
	"mflix-insights/report"
	"mflix-insights/source"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	storage := NewSQLiteStorage(t.TempDir(), nil)
	require.NoError(t, storage.Initialize())
	t.Cleanup(func() { storage.Close() })
	return storage
}

func TestSQLiteStorageInit(t *testing.T) {
	tempDir := t.TempDir()

	storage := NewSQLiteStorage(tempDir, nil)
	require.NoError(t, storage.Initialize())
	defer storage.Close()

	_, err := os.Stat(filepath.Join(tempDir, "mflix_insights.db"))
	assert.NoError(t, err, "database file was not created")
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)
	movies := movietest.Sample()

	require.NoError(t, storage.SaveSnapshot(ctx, 1975, movies))

	got, err := storage.Movies(ctx, source.Query{Year: 1975})
	require.NoError(t, err)
	require.Len(t, got, len(movies))
	for i := range movies {
		assert.Equal(t, movies[i].Fields(), got[i].Fields())
	}

	other, err := storage.Movies(ctx, source.Query{Year: 1977})
	require.NoError(t, err)
	assert.NotNil(t, other)
	assert.Empty(t, other)
}

func TestSnapshotReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	require.NoError(t, storage.SaveSnapshot(ctx, 1975, movietest.Sample()))
	replacement := []movie.Movie{movie.New(movie.Fields{Title: "Jaws", Year: 1975})}
	require.NoError(t, storage.SaveSnapshot(ctx, 1975, replacement))

	got, err := storage.Movies(ctx, source.Query{Year: 1975})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jaws", got[0].Title())
	assert.NotNil(t, got[0].Cast())
	assert.Empty(t, got[0].Cast())
}

func TestSnapshotKeepsZeroValueRecords(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	require.NoError(t, storage.SaveSnapshot(ctx, 0, []movie.Movie{movie.New(movie.Fields{})}))

	got, err := storage.Movies(ctx, source.Query{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, movie.New(movie.Fields{}).Fields(), got[0].Fields())
}

func TestReports(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	older := report.Build(1975, movietest.Sample())
	older.GeneratedAt = time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	newer := report.Build(0, nil)
	newer.GeneratedAt = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, storage.SaveReport(ctx, older))
	require.NoError(t, storage.SaveReport(ctx, newer))

	got, err := storage.GetReport(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, older.ID, got.ID)
	assert.Equal(t, "Actor A", got.TopActor())
	assert.Equal(t, older.HighestRatedCast, got.HighestRatedCast)

	_, err = storage.GetReport(ctx, "missing")
	assert.ErrorIs(t, err, ErrReportNotFound)

	all, err := storage.ListReports(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)

	limited, err := storage.ListReports(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, newer.ID, limited[0].ID)

	assert.Error(t, storage.SaveReport(ctx, older), "duplicate id")
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	require.NoError(t, storage.SaveSnapshot(ctx, 1975, movietest.Sample()))
	require.NoError(t, storage.SaveSnapshot(ctx, 1977, movietest.Sample()[2:3]))
	require.NoError(t, storage.SaveReport(ctx, report.Build(1975, movietest.Sample())))

	stats, err := storage.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 6, stats["movies"])
	assert.Equal(t, 2, stats["snapshots"])
	assert.Equal(t, 1, stats["reports"])
}

var _ StorageInterface = (*SQLiteStorage)(nil)
