package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account within exactly one tenant. The same email string may
// exist in two tenants as two distinct users.
type User struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Email        string
	PasswordHash string // argon2id digest, never serialized outward
	Name         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
