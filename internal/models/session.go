package models

import "time"

// Session is one authenticated dashboard login. The dashboard has a single
// human user, so sessions carry no account reference.
type Session struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
