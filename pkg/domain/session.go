package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is one authenticated login. TenantID duplicates the owning
// user's tenant id so validation never needs a join; a mismatch between
// the two must be rejected, never repaired. Sessions are immutable after
// creation and removed by logout, lazy expiry reaping, or the sweeper.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TenantID  uuid.UUID
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session is expired at t. A session whose
// expiry equals t exactly is already expired.
func (s *Session) IsExpired(t time.Time) bool {
	return !s.ExpiresAt.After(t)
}
