package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/npapadam/openclaw-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func truncateSnapshots(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE oc_cron_snapshots`)
	require.NoError(t, err, "Failed to truncate snapshots in test database")
}

func countSnapshots(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()
	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM oc_cron_snapshots`).Scan(&count)
	require.NoError(t, err)
	return count
}

func TestSnapshotRepository_Latest_Empty(t *testing.T) {
	pool := getTestPool(t)
	repo := NewPostgresSnapshotRepository(pool)
	truncateSnapshots(t, pool)

	_, err := repo.Latest(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSnapshotRepository_AppendAndLatest(t *testing.T) {
	pool := getTestPool(t)
	repo := NewPostgresSnapshotRepository(pool)
	truncateSnapshots(t, pool)
	ctx := context.Background()

	snapshot := &models.CronSnapshot{Jobs: []byte(`[{"id":"a"},{"id":"b"}]`)}
	count, err := repo.Append(ctx, snapshot)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NotZero(t, snapshot.ID)
	assert.False(t, snapshot.CapturedAt.IsZero(), "captured_at should default to write time")

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot.ID, latest.ID)
	assert.JSONEq(t, `[{"id":"a"},{"id":"b"}]`, string(latest.Jobs))
}

func TestSnapshotRepository_LatestWinsByCapturedAt(t *testing.T) {
	pool := getTestPool(t)
	repo := NewPostgresSnapshotRepository(pool)
	truncateSnapshots(t, pool)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)

	// Insert with capture times out of order: the newest capture time wins,
	// not the last insert.
	newer := &models.CronSnapshot{
		Jobs:       []byte(`[{"id":"newer"}]`),
		CapturedAt: base,
	}
	_, err := repo.Append(ctx, newer)
	require.NoError(t, err)

	older := &models.CronSnapshot{
		Jobs:       []byte(`[{"id":"older"}]`),
		CapturedAt: base.Add(-time.Hour),
	}
	_, err = repo.Append(ctx, older)
	require.NoError(t, err)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)
	assert.JSONEq(t, `[{"id":"newer"}]`, string(latest.Jobs))
}

func TestSnapshotRepository_EmptyArrayReplacesJobs(t *testing.T) {
	pool := getTestPool(t)
	repo := NewPostgresSnapshotRepository(pool)
	truncateSnapshots(t, pool)
	ctx := context.Background()

	_, err := repo.Append(ctx, &models.CronSnapshot{Jobs: []byte(`[{"id":"a"}]`)})
	require.NoError(t, err)

	// A later empty snapshot means "zero scheduled jobs" and becomes the
	// current state.
	empty := &models.CronSnapshot{Jobs: []byte(`[]`)}
	count, err := repo.Append(ctx, empty)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, empty.ID, latest.ID)
	assert.JSONEq(t, `[]`, string(latest.Jobs))
}

func TestSnapshotRepository_RejectedSnapshotWritesNothing(t *testing.T) {
	pool := getTestPool(t)
	repo := NewPostgresSnapshotRepository(pool)
	truncateSnapshots(t, pool)
	ctx := context.Background()

	before := countSnapshots(t, pool)

	_, err := repo.Append(ctx, &models.CronSnapshot{Jobs: []byte(`{"not":"an array"}`)})
	require.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, before, countSnapshots(t, pool), "snapshot count must be unchanged")
}

func TestSnapshotRepository_HistoryIsRetained(t *testing.T) {
	pool := getTestPool(t)
	repo := NewPostgresSnapshotRepository(pool)
	truncateSnapshots(t, pool)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Append(ctx, &models.CronSnapshot{Jobs: []byte(`[]`)})
		require.NoError(t, err)
	}

	// Every sync is a full row; prior snapshots are never compacted.
	assert.Equal(t, 3, countSnapshots(t, pool))
}
