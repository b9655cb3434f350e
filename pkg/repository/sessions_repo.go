package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/orgable/orgable/pkg/domain"
)

// SessionsRepository handles session persistence. Sessions are immutable
// after creation; every mutation is a delete.
type SessionsRepository struct {
	db Querier
}

// NewSessionsRepository creates a new sessions repository.
func NewSessionsRepository(db *sql.DB) *SessionsRepository {
	return &SessionsRepository{db: db}
}

// Create inserts a session with its tenant id attached atomically.
func (r *SessionsRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, tenant_id, token_hash, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.UserID, session.TenantID,
		session.TokenHash, session.CreatedAt, session.ExpiresAt,
	)
	return err
}

// GetByTokenHash retrieves a session by token hash. The hash is the sole
// index this path needs.
func (r *SessionsRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	query := `
		SELECT id, user_id, tenant_id, token_hash, created_at, expires_at
		FROM sessions
		WHERE token_hash = $1
	`
	session := &domain.Session{}
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(
		&session.ID, &session.UserID, &session.TenantID,
		&session.TokenHash, &session.CreatedAt, &session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteByID removes a session row. Deleting an absent row is not an
// error.
func (r *SessionsRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

// DeleteByTokenHash removes the session for a token hash, idempotently.
func (r *SessionsRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = $1`, tokenHash)
	return err
}

// DeleteAllByUser removes every session for the user within one tenant.
// The same user id under a different tenant is untouched.
func (r *SessionsRepository) DeleteAllByUser(ctx context.Context, tenantID, userID uuid.UUID) error {
	query := `
		DELETE FROM sessions
		WHERE tenant_id = $1 AND user_id = $2
	`
	_, err := r.db.ExecContext(ctx, query, tenantID, userID)
	return err
}

// DeleteExpired bulk-deletes every session expired at now, across all
// tenants, and returns the number removed.
func (r *SessionsRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CountActive returns the number of unexpired sessions in the tenant.
func (r *SessionsRepository) CountActive(ctx context.Context, tenantID uuid.UUID, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM sessions
		WHERE tenant_id = $1 AND expires_at > $2
	`
	var n int
	err := r.db.QueryRowContext(ctx, query, tenantID, now).Scan(&n)
	return n, err
}
