package models

import (
	"encoding/json"
	"time"
)

// Activity is one logged event shown in the dashboard feed. Records are
// immutable once written; the feed is an append-only log.
type Activity struct {
	ID          int64           `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Metadata    json.RawMessage `json:"metadata"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Common activity types. The set is open ended: the store accepts any
// non-empty type string, these are just the ones the feed renders specially.
const (
	TypeMessage   = "message"
	TypeTool      = "tool"
	TypeCron      = "cron"
	TypeHeartbeat = "heartbeat"
	TypeError     = "error"
)
