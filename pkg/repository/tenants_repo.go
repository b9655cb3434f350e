package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/orgable/orgable/pkg/domain"
)

// TenantsRepository handles tenant persistence. The request path only
// reads tenants; Create exists for provisioning tooling.
type TenantsRepository struct {
	db Querier
}

// NewTenantsRepository creates a new tenants repository.
func NewTenantsRepository(db *sql.DB) *TenantsRepository {
	return &TenantsRepository{db: db}
}

// Create inserts a tenant.
func (r *TenantsRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	query := `
		INSERT INTO tenants (id, subdomain, name, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		tenant.ID, tenant.Subdomain, tenant.Name, tenant.CreatedAt,
	)
	return err
}

// GetBySubdomain retrieves a tenant by its normalized subdomain.
func (r *TenantsRepository) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	query := `
		SELECT id, subdomain, name, created_at
		FROM tenants
		WHERE subdomain = $1
	`
	var tenant domain.Tenant
	err := r.db.QueryRowContext(ctx, query, subdomain).Scan(
		&tenant.ID, &tenant.Subdomain, &tenant.Name, &tenant.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTenantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByID retrieves a tenant by ID.
func (r *TenantsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	query := `
		SELECT id, subdomain, name, created_at
		FROM tenants
		WHERE id = $1
	`
	var tenant domain.Tenant
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tenant.ID, &tenant.Subdomain, &tenant.Name, &tenant.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTenantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}
