package middleware

import (
	"context"
	"net/http"

	"github.com/orgable/orgable/internal/httputil"
	"github.com/orgable/orgable/pkg/domain"
	"github.com/orgable/orgable/pkg/tenant"
)

type contextKey string

const (
	// TenantKey is the context key for the resolved tenant.
	TenantKey contextKey = "tenant"
	// UserKey is the context key for the authenticated user.
	UserKey contextKey = "user"
)

// TenantHeader carries the candidate subdomain between the edge and inner
// layers in a split deployment. Its value is a candidate string, never a
// verified tenant; the inner layer always upgrades it through the
// directory.
const TenantHeader = "X-Tenant-Subdomain"

// Policy controls what an unresolved tenant looks like to the caller.
type Policy string

const (
	// PolicyReject answers with a generic unauthorized outcome,
	// indistinguishable from a bad session (the default).
	PolicyReject Policy = "reject"
	// PolicyNotFound answers 404, hiding that the host shape was even
	// considered.
	PolicyNotFound Policy = "not_found"
)

// TenantConfig configures tenant resolution middleware.
type TenantConfig struct {
	Resolver    *tenant.Resolver
	Directory   *tenant.Directory
	TrustHeader bool
	Policy      Policy
}

// Candidate returns the candidate subdomain for a request: the forwarded
// header when the deployment trusts its network hop, otherwise the Host
// header.
func Candidate(r *http.Request, resolver *tenant.Resolver, trustHeader bool) (string, bool) {
	if trustHeader {
		if v := r.Header.Get(TenantHeader); v != "" {
			return tenant.Normalize(v), true
		}
	}
	return resolver.ExtractSubdomain(r.Host)
}

// ResolveTenant resolves the request's tenant and stores it in context.
// Runs first on every tenant-facing route; unresolved requests never
// reach the handler.
func ResolveTenant(cfg TenantConfig) func(http.Handler) http.Handler {
	if cfg.Policy == "" {
		cfg.Policy = PolicyReject
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			candidate, ok := Candidate(r, cfg.Resolver, cfg.TrustHeader)
			if ok {
				if tn, err := cfg.Directory.ResolveBySubdomain(r.Context(), candidate); err == nil {
					ctx := context.WithValue(r.Context(), TenantKey, tn)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}
			rejectUnresolved(w, cfg.Policy)
		})
	}
}

// StampTenantHeader is the edge half of a split deployment: it runs only
// the pure extraction and forwards the candidate to the inner layer. Any
// inbound value of the header is discarded first, so clients cannot plant
// one.
func StampTenantHeader(resolver *tenant.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Header.Del(TenantHeader)
			if sub, ok := resolver.ExtractSubdomain(r.Host); ok {
				r.Header.Set(TenantHeader, sub)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetTenant extracts the resolved tenant from the request context.
func GetTenant(ctx context.Context) (*domain.Tenant, bool) {
	tn, ok := ctx.Value(TenantKey).(*domain.Tenant)
	return tn, ok
}

// GetUser extracts the authenticated user from the request context.
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}

func rejectUnresolved(w http.ResponseWriter, policy Policy) {
	if policy == PolicyNotFound {
		httputil.Error(w, http.StatusNotFound, "not found")
		return
	}
	httputil.Error(w, http.StatusUnauthorized, "unauthorized")
}
