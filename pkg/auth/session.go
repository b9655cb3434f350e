package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/orgable/orgable/pkg/domain"
)

// DefaultSessionTTL is the fixed session lifetime.
const DefaultSessionTTL = 30 * 24 * time.Hour

// SessionIdentity is the (user, tenant) pair a validated token proves.
type SessionIdentity struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
}

// SessionRepo is the persistence the session service needs.
type SessionRepo interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteAllByUser(ctx context.Context, tenantID, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SessionConfig holds session configuration.
type SessionConfig struct {
	TTL time.Duration
}

// SessionService issues, validates, and revokes opaque session tokens.
// Each token is bound to exactly one (user, tenant) pair.
type SessionService struct {
	config   SessionConfig
	sessions SessionRepo
	now      func() time.Time
}

// NewSessionService creates a new session service.
func NewSessionService(config SessionConfig, sessions SessionRepo) *SessionService {
	if config.TTL <= 0 {
		config.TTL = DefaultSessionTTL
	}
	return &SessionService{
		config:   config,
		sessions: sessions,
		now:      time.Now,
	}
}

// TTL returns the session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.config.TTL
}

// Issue creates a session for the user within the tenant and returns the
// raw token. The raw token is the only value that may reach the client;
// the session row id never does.
func (s *SessionService) Issue(ctx context.Context, userID, tenantID uuid.UUID) (string, error) {
	token, err := GenerateToken(sessionTokenLen)
	if err != nil {
		return "", err
	}

	now := s.now()
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    userID,
		TenantID:  tenantID,
		TokenHash: HashToken(token),
		CreatedAt: now,
		ExpiresAt: now.Add(s.config.TTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", err
	}
	return token, nil
}

// Validate looks up a raw token and returns the identity it proves.
// Expired sessions are deleted as a side effect. When expectedTenantID is
// not uuid.Nil, a session bound to any other tenant fails exactly like an
// unknown token, so a cross-tenant replay is indistinguishable from a bad
// guess. Every rejection is domain.ErrSessionInvalid.
func (s *SessionService) Validate(ctx context.Context, token string, expectedTenantID uuid.UUID) (*SessionIdentity, error) {
	if token == "" {
		return nil, domain.ErrSessionInvalid
	}

	session, err := s.sessions.GetByTokenHash(ctx, HashToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrSessionInvalid
		}
		return nil, err
	}

	if session.IsExpired(s.now()) {
		_ = s.sessions.DeleteByID(ctx, session.ID)
		return nil, domain.ErrSessionInvalid
	}

	if expectedTenantID != uuid.Nil && session.TenantID != expectedTenantID {
		return nil, domain.ErrSessionInvalid
	}

	return &SessionIdentity{UserID: session.UserID, TenantID: session.TenantID}, nil
}

// Revoke deletes the session for token. Revoking an absent token is not
// an error.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteByTokenHash(ctx, HashToken(token))
}

// RevokeAll deletes every session the user holds within one tenant.
// Sessions of the same user id under a different tenant are untouched.
func (s *SessionService) RevokeAll(ctx context.Context, tenantID, userID uuid.UUID) error {
	return s.sessions.DeleteAllByUser(ctx, tenantID, userID)
}

// SweepExpired bulk-deletes expired sessions and returns the count
// removed.
func (s *SessionService) SweepExpired(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.now())
}
