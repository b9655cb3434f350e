package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OrgSettings is the per-tenant settings document, one-to-one with its
// tenant. The document content is opaque to this core.
type OrgSettings struct {
	TenantID  uuid.UUID
	Document  json.RawMessage
	UpdatedAt time.Time
}
