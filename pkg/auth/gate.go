package auth

import (
	"context"
	"errors"

	"github.com/orgable/orgable/pkg/domain"
	"github.com/orgable/orgable/pkg/tenant"
)

// TenantDirectory upgrades a candidate subdomain to a verified tenant.
type TenantDirectory interface {
	ResolveBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)
}

// Identity is the fully verified result of authentication.
type Identity struct {
	User   *domain.User
	Tenant *domain.Tenant
}

// Gate answers "who is making this request, for which tenant, and do the
// two agree". It has no partial-success state: either every check passes
// or the request is unauthenticated.
type Gate struct {
	resolver  *tenant.Resolver
	directory TenantDirectory
	sessions  *SessionService
	users     UserRepo
}

// NewGate creates an authentication gate.
func NewGate(resolver *tenant.Resolver, directory TenantDirectory, sessions *SessionService, users UserRepo) *Gate {
	return &Gate{
		resolver:  resolver,
		directory: directory,
		sessions:  sessions,
		users:     users,
	}
}

// Authenticate resolves the tenant from hostHeader and validates token
// against it.
func (g *Gate) Authenticate(ctx context.Context, hostHeader, token string) (*Identity, error) {
	sub, ok := g.resolver.ExtractSubdomain(hostHeader)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return g.AuthenticateCandidate(ctx, sub, token)
}

// AuthenticateCandidate authenticates against a candidate subdomain
// extracted elsewhere (the split edge/inner deployment shape). The
// candidate stays an untrusted string until the directory lookup upgrades
// it. The session's denormalized tenant id and the live user row must
// agree; a session violating that is rejected, not repaired.
func (g *Gate) AuthenticateCandidate(ctx context.Context, candidate, token string) (*Identity, error) {
	tn, err := g.directory.ResolveBySubdomain(ctx, candidate)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	ident, err := g.sessions.Validate(ctx, token, tn.ID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionInvalid) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	user, err := g.users.GetByID(ctx, tn.ID, ident.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	if user.TenantID != tn.ID {
		return nil, domain.ErrUnauthenticated
	}

	return &Identity{User: user, Tenant: tn}, nil
}
