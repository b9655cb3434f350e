package tenant

import (
	"context"
	"errors"
	"log/slog"

	"github.com/orgable/orgable/pkg/domain"
)

// Store is the read-only tenant lookup the directory needs.
type Store interface {
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)
}

// Directory resolves candidate subdomains to verified tenants.
type Directory struct {
	store  Store
	logger *slog.Logger
}

// NewDirectory creates a tenant directory.
func NewDirectory(store Store, logger *slog.Logger) *Directory {
	return &Directory{store: store, logger: logger}
}

// ResolveBySubdomain normalizes the candidate and looks it up. Storage
// failures are logged here and reported as domain.ErrTenantNotFound:
// unauthenticated callers must not be able to tell an absent tenant from
// an infrastructure fault.
func (d *Directory) ResolveBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	sub := Normalize(subdomain)
	if sub == "" {
		return nil, domain.ErrTenantNotFound
	}
	t, err := d.store.GetBySubdomain(ctx, sub)
	if err != nil {
		if !errors.Is(err, domain.ErrTenantNotFound) {
			d.logger.Error("tenant lookup failed", "subdomain", sub, "error", err)
		}
		return nil, domain.ErrTenantNotFound
	}
	return t, nil
}
