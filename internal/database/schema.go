package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Table names are prefixed with oc_ so the dashboard can share a database
// with other applications.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS oc_activities (
		id SERIAL PRIMARY KEY,
		timestamp TIMESTAMPTZ DEFAULT NOW(),
		type VARCHAR(50) NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		metadata JSONB,
		created_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS oc_cron_snapshots (
		id SERIAL PRIMARY KEY,
		jobs JSONB NOT NULL,
		captured_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_oc_activities_timestamp ON oc_activities(timestamp DESC)`,
}

// EnsureSchema creates the backing tables and index if they do not exist.
// Every statement is idempotent, so concurrent or repeated calls are safe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
