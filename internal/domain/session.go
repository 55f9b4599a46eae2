package domain

import "time"

// Session is a server-side admin session record. The ID is the opaque value
// held by the client's session cookie; the row is the source of truth for the
// authentication state. Expiry is absolute (24h by default) and enforced
// lazily: an expired row is treated as absent on the next lookup.
type Session struct {
	ID        string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	IsAdmin   bool      `gorm:"type:BOOLEAN NOT NULL"`
	CreatedAt time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (Session) TableName() string { return "sessions" }

// Expired reports whether the session is past its absolute expiry at now.
func (s Session) Expired(now time.Time) bool { return !s.ExpiresAt.After(now) }
