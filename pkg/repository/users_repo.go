package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/orgable/orgable/pkg/domain"
)

// UsersRepository handles user persistence. Every query filters on
// tenant_id; there is no cross-tenant read path.
type UsersRepository struct {
	db Querier
}

// NewUsersRepository creates a new users repository.
func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create inserts the user with its tenant id attached in the same
// statement, so a user row never exists unscoped. A duplicate
// (tenant_id, email) pair maps to domain.ErrUserAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, tenant_id, email, password_hash, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.TenantID, user.Email, user.PasswordHash,
		user.Name, user.CreatedAt, user.UpdatedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domain.ErrUserAlreadyExists
	}
	return err
}

// GetByID retrieves a user by id within the tenant.
func (r *UsersRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, tenant_id, email, password_hash, name, created_at, updated_at
		FROM users
		WHERE id = $1 AND tenant_id = $2
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id, tenantID))
}

// GetByEmail retrieves a user by normalized email within the tenant.
func (r *UsersRepository) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error) {
	query := `
		SELECT id, tenant_id, email, password_hash, name, created_at, updated_at
		FROM users
		WHERE tenant_id = $1 AND email = $2
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, tenantID, email))
}

// List retrieves the tenant's users, optionally narrowed by equality
// filters on user columns. The tenant predicate is always present.
func (r *UsersRepository) List(ctx context.Context, tenantID uuid.UUID, filters map[string]any) ([]*domain.User, error) {
	clause, args := ScopeFilters(tenantID, filters)
	query := `
		SELECT id, tenant_id, email, password_hash, name, created_at, updated_at
		FROM users
		WHERE ` + clause + `
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		err := rows.Scan(
			&user.ID, &user.TenantID, &user.Email, &user.PasswordHash,
			&user.Name, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Count returns the number of users in the tenant.
func (r *UsersRepository) Count(ctx context.Context, tenantID uuid.UUID) (int, error) {
	clause, args := ScopeFilters(tenantID, nil)
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE `+clause, args...).Scan(&n)
	return n, err
}

// Delete removes a user matching both id and tenant. A wrong tenant for a
// right id affects zero rows instead of crossing tenants; deleting an
// absent user is not an error.
func (r *UsersRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `
		DELETE FROM users
		WHERE id = $1 AND tenant_id = $2
	`
	_, err := r.db.ExecContext(ctx, query, id, tenantID)
	return err
}

func (r *UsersRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.ID, &user.TenantID, &user.Email, &user.PasswordHash,
		&user.Name, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
