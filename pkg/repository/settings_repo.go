package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/orgable/orgable/pkg/domain"
)

// OrgSettingsRepository handles the per-tenant settings document.
type OrgSettingsRepository struct {
	db Querier
}

// NewOrgSettingsRepository creates a new settings repository.
func NewOrgSettingsRepository(db *sql.DB) *OrgSettingsRepository {
	return &OrgSettingsRepository{db: db}
}

// Get retrieves the tenant's settings document.
func (r *OrgSettingsRepository) Get(ctx context.Context, tenantID uuid.UUID) (*domain.OrgSettings, error) {
	query := `
		SELECT tenant_id, document, updated_at
		FROM org_settings
		WHERE tenant_id = $1
	`
	settings := &domain.OrgSettings{}
	err := r.db.QueryRowContext(ctx, query, tenantID).Scan(
		&settings.TenantID, &settings.Document, &settings.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Upsert writes the document, creating the row with its tenant id in the
// same statement when absent.
func (r *OrgSettingsRepository) Upsert(ctx context.Context, tenantID uuid.UUID, document json.RawMessage) error {
	query := `
		INSERT INTO org_settings (tenant_id, document, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (tenant_id) DO UPDATE
		SET document = EXCLUDED.document, updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, tenantID, document)
	return err
}

// Update replaces an existing document; absent settings are an error.
func (r *OrgSettingsRepository) Update(ctx context.Context, tenantID uuid.UUID, document json.RawMessage) error {
	query := `
		UPDATE org_settings
		SET document = $2, updated_at = NOW()
		WHERE tenant_id = $1
	`
	result, err := r.db.ExecContext(ctx, query, tenantID, document)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSettingsNotFound
	}
	return nil
}

// Delete removes the tenant's settings, idempotently.
func (r *OrgSettingsRepository) Delete(ctx context.Context, tenantID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM org_settings WHERE tenant_id = $1`, tenantID)
	return err
}
