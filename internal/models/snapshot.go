package models

import (
	"encoding/json"
	"time"
)

// CronSnapshot is a full point-in-time capture of the external scheduler's
// job list. Each sync inserts a complete replacement image; the current
// schedule is simply the snapshot with the greatest captured_at.
type CronSnapshot struct {
	ID         int64           `json:"id"`
	Jobs       json.RawMessage `json:"jobs"`
	CapturedAt time.Time       `json:"captured_at"`
}
