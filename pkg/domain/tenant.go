package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is an isolated organization identified by its subdomain.
// Tenants are provisioned out-of-band; the request path only reads them.
type Tenant struct {
	ID        uuid.UUID
	Subdomain string // lowercase, unique
	Name      string
	CreatedAt time.Time
}
