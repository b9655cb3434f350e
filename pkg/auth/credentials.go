package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/orgable/orgable/pkg/domain"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// UserRepo is the persistence the credentials service and the gate need.
// Every method is tenant-scoped.
type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.User, error)
}

// CredentialsService handles signup and password login within a tenant.
type CredentialsService struct {
	users UserRepo
}

// NewCredentialsService creates a new credentials service.
func NewCredentialsService(users UserRepo) *CredentialsService {
	return &CredentialsService{users: users}
}

// Signup registers a user within the tenant. The same email under a
// different tenant is a different account. Duplicate detection relies on
// the (tenant_id, email) unique constraint, so concurrent signups cannot
// both win.
func (s *CredentialsService) Signup(ctx context.Context, tenantID uuid.UUID, email, password, name string) (*domain.User, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	email = NormalizeEmail(email)

	if password == "" {
		return nil, domain.ErrMissingField
	}
	if len(password) < MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	name = SanitizeName(name)

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if name != "" {
		user.Name = &name
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies email and password within the tenant. An unknown email
// and a wrong password return the same error, so callers cannot enumerate
// accounts.
func (s *CredentialsService) Login(ctx context.Context, tenantID uuid.UUID, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingField
	}

	user, err := s.users.GetByEmail(ctx, tenantID, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
