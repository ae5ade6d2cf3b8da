package repositories

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/npapadam/openclaw-dashboard/internal/models"
)

type ActivityRepository interface {
	// Append inserts one activity record. Type and Title must be non-empty.
	// A zero Timestamp and a nil Metadata default to the database clock and
	// an empty object respectively. ID, Timestamp and CreatedAt are
	// populated on return.
	Append(ctx context.Context, activity *models.Activity) error

	// List returns records ordered by timestamp descending, at most limit
	// rows (non-positive limit falls back to the default of 50). An empty
	// typeFilter or the sentinel "all" returns every type.
	List(ctx context.Context, limit int, typeFilter string) ([]*models.Activity, error)
}

type SnapshotRepository interface {
	// Append inserts one snapshot. Jobs must be a JSON array (an empty
	// array is valid). A zero CapturedAt defaults to the database clock.
	// Returns the number of jobs in the snapshot.
	Append(ctx context.Context, snapshot *models.CronSnapshot) (int, error)

	// Latest returns the snapshot with the greatest captured_at, or
	// ErrNotFound if no snapshot has ever been taken.
	Latest(ctx context.Context) (*models.CronSnapshot, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// countJobs reports how many elements a raw jobs blob holds, or ErrValidation
// if the blob is not a JSON array.
func countJobs(jobs json.RawMessage) (int, error) {
	trimmed := bytes.TrimSpace(jobs)
	// json.Unmarshal accepts "null" into a slice, so the array check has to
	// look at the first byte.
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, ErrValidation
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(trimmed, &arr); err != nil {
		return 0, ErrValidation
	}
	return len(arr), nil
}
