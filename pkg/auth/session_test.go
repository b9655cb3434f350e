package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/orgable/orgable/pkg/domain"
)

type fakeSessionRepo struct {
	mu     sync.Mutex
	byHash map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byHash: make(map[string]*domain.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.byHash[session.TokenHash] = &cp
	return nil
}

func (r *fakeSessionRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byHash[tokenHash]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (r *fakeSessionRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for hash, s := range r.byHash {
		if s.ID == id {
			delete(r.byHash, hash)
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byHash, tokenHash)
	return nil
}

func (r *fakeSessionRepo) DeleteAllByUser(ctx context.Context, tenantID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for hash, s := range r.byHash {
		if s.TenantID == tenantID && s.UserID == userID {
			delete(r.byHash, hash)
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for hash, s := range r.byHash {
		if !s.ExpiresAt.After(now) {
			delete(r.byHash, hash)
			n++
		}
	}
	return n, nil
}

func (r *fakeSessionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byHash)
}

func TestSessionService_IssueAndValidate(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(SessionConfig{}, repo)

	userID := uuid.New()
	tenantID := uuid.New()

	token, err := svc.Issue(context.Background(), userID, tenantID)
	require.NoError(t, err)
	require.Len(t, token, 64)

	ident, err := svc.Validate(context.Background(), token, tenantID)
	require.NoError(t, err)
	require.Equal(t, userID, ident.UserID)
	require.Equal(t, tenantID, ident.TenantID)
}

func TestSessionService_ValidateWithoutExpectedTenant(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(SessionConfig{}, repo)

	userID := uuid.New()
	tenantID := uuid.New()
	token, err := svc.Issue(context.Background(), userID, tenantID)
	require.NoError(t, err)

	ident, err := svc.Validate(context.Background(), token, uuid.Nil)
	require.NoError(t, err)
	require.Equal(t, tenantID, ident.TenantID)
}

func TestSessionService_RejectsCrossTenantToken(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(SessionConfig{}, repo)

	token, err := svc.Issue(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)

	otherTenant := uuid.New()
	_, err = svc.Validate(context.Background(), token, otherTenant)
	require.ErrorIs(t, err, domain.ErrSessionInvalid)

	// Same error as an unknown token, so the two are indistinguishable.
	_, unknownErr := svc.Validate(context.Background(), "deadbeef", otherTenant)
	require.ErrorIs(t, unknownErr, domain.ErrSessionInvalid)
}

func TestSessionService_RejectsUnknownAndEmptyTokens(t *testing.T) {
	svc := NewSessionService(SessionConfig{}, newFakeSessionRepo())

	_, err := svc.Validate(context.Background(), "nope", uuid.Nil)
	require.ErrorIs(t, err, domain.ErrSessionInvalid)

	_, err = svc.Validate(context.Background(), "", uuid.Nil)
	require.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestSessionService_ExpiryBoundary(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(SessionConfig{TTL: time.Hour}, repo)

	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	tenantID := uuid.New()
	token, err := svc.Issue(context.Background(), uuid.New(), tenantID)
	require.NoError(t, err)

	// Expiry exactly equal to "now" counts as expired and removes the row.
	svc.now = func() time.Time { return issuedAt.Add(time.Hour) }
	_, err = svc.Validate(context.Background(), token, tenantID)
	require.ErrorIs(t, err, domain.ErrSessionInvalid)
	require.Equal(t, 0, repo.count())

	// Gone for good, even if the clock rolls back.
	svc.now = func() time.Time { return issuedAt }
	_, err = svc.Validate(context.Background(), token, tenantID)
	require.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestSessionService_RevokeIsIdempotent(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(SessionConfig{}, repo)

	tenantID := uuid.New()
	token, err := svc.Issue(context.Background(), uuid.New(), tenantID)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(context.Background(), token))
	require.Equal(t, 0, repo.count())
	require.NoError(t, svc.Revoke(context.Background(), token))

	_, err = svc.Validate(context.Background(), token, tenantID)
	require.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestSessionService_RevokeAllIsTenantScoped(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(SessionConfig{}, repo)

	userID := uuid.New()
	tenantA := uuid.New()
	tenantB := uuid.New()

	_, err := svc.Issue(context.Background(), userID, tenantA)
	require.NoError(t, err)
	_, err = svc.Issue(context.Background(), userID, tenantA)
	require.NoError(t, err)
	tokenB, err := svc.Issue(context.Background(), userID, tenantB)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeAll(context.Background(), tenantA, userID))

	// The same user's session under the other tenant survives.
	require.Equal(t, 1, repo.count())
	ident, err := svc.Validate(context.Background(), tokenB, tenantB)
	require.NoError(t, err)
	require.Equal(t, tenantB, ident.TenantID)
}

func TestSessionService_SweepExpired(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(SessionConfig{TTL: time.Hour}, repo)

	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	tenantID := uuid.New()
	_, err := svc.Issue(context.Background(), uuid.New(), tenantID)
	require.NoError(t, err)
	_, err = svc.Issue(context.Background(), uuid.New(), tenantID)
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(30 * time.Minute) }
	liveToken, err := svc.Issue(context.Background(), uuid.New(), tenantID)
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(time.Hour) }
	n, err := svc.SweepExpired(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	_, err = svc.Validate(context.Background(), liveToken, tenantID)
	require.NoError(t, err)
}
