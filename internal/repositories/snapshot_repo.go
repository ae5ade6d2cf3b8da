package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/npapadam/openclaw-dashboard/internal/models"
)

type PostgresSnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSnapshotRepository(pool *pgxpool.Pool) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{pool: pool}
}

func (r *PostgresSnapshotRepository) Append(ctx context.Context, snapshot *models.CronSnapshot) (int, error) {
	// An empty array is a valid snapshot (zero scheduled jobs); anything
	// that is not an array is rejected before touching the database.
	count, err := countJobs(snapshot.Jobs)
	if err != nil {
		return 0, fmt.Errorf("%w: jobs must be an array", ErrValidation)
	}

	var capturedAt any
	if !snapshot.CapturedAt.IsZero() {
		capturedAt = snapshot.CapturedAt
	}

	query := `INSERT INTO oc_cron_snapshots (jobs, captured_at)
	          VALUES ($1, COALESCE($2, NOW()))
	          RETURNING id, captured_at`

	err = r.pool.QueryRow(ctx, query, snapshot.Jobs, capturedAt).
		Scan(&snapshot.ID, &snapshot.CapturedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to append snapshot: %w", err)
	}
	return count, nil
}

func (r *PostgresSnapshotRepository) Latest(ctx context.Context) (*models.CronSnapshot, error) {
	query := `SELECT id, jobs, captured_at
	          FROM oc_cron_snapshots
	          ORDER BY captured_at DESC
	          LIMIT 1`

	var snapshot models.CronSnapshot
	err := r.pool.QueryRow(ctx, query).Scan(&snapshot.ID, &snapshot.Jobs, &snapshot.CapturedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return &snapshot, nil
}
