package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/npapadam/openclaw-dashboard/internal/models"
)

// DefaultListLimit is used when the caller supplies no usable limit.
const DefaultListLimit = 50

type PostgresActivityRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresActivityRepository(pool *pgxpool.Pool) *PostgresActivityRepository {
	return &PostgresActivityRepository{pool: pool}
}

func (r *PostgresActivityRepository) Append(ctx context.Context, activity *models.Activity) error {
	// Validation happens before any query so a bad record never reaches
	// the database.
	if activity.Type == "" || activity.Title == "" {
		return fmt.Errorf("%w: type and title are required", ErrValidation)
	}

	var ts any
	if !activity.Timestamp.IsZero() {
		ts = activity.Timestamp
	}

	// NULL metadata is stored as an empty object; the column is opaque to
	// the store either way.
	query := `INSERT INTO oc_activities (timestamp, type, title, description, metadata)
	          VALUES (COALESCE($1, NOW()), $2, $3, $4, COALESCE($5, '{}'::jsonb))
	          RETURNING id, timestamp, metadata, created_at`

	err := r.pool.QueryRow(ctx, query,
		ts,
		activity.Type,
		activity.Title,
		activity.Description,
		activity.Metadata,
	).Scan(&activity.ID, &activity.Timestamp, &activity.Metadata, &activity.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}
	return nil
}

func (r *PostgresActivityRepository) List(ctx context.Context, limit int, typeFilter string) ([]*models.Activity, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := `SELECT id, timestamp, type, title, description, metadata, created_at
	          FROM oc_activities`
	args := []any{}

	// "all" is the UI's sentinel for no filter.
	if typeFilter != "" && typeFilter != "all" {
		query += ` WHERE type = $1`
		args = append(args, typeFilter)
	}
	query += fmt.Sprintf(` ORDER BY timestamp DESC LIMIT %d`, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities := []*models.Activity{}
	for rows.Next() {
		var activity models.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.Timestamp,
			&activity.Type,
			&activity.Title,
			&activity.Description,
			&activity.Metadata,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}
