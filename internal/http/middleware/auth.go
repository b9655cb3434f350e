package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/orgable/orgable/internal/httputil"
	"github.com/orgable/orgable/pkg/auth"
	"github.com/orgable/orgable/pkg/domain"
	"github.com/orgable/orgable/pkg/tenant"
)

// AuthConfig configures the session authentication middleware.
type AuthConfig struct {
	Gate        *auth.Gate
	Resolver    *tenant.Resolver
	TrustHeader bool
	Policy      Policy
	Logger      *slog.Logger
}

// Auth gates protected routes. It authenticates the request end to end
// (tenant, session, user cross-check) through the gate and stores the
// verified identity in context. Resolution, validation, and the user load
// run strictly in that order; any failure is a generic rejection.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	if cfg.Policy == "" {
		cfg.Policy = PolicyReject
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			candidate, ok := Candidate(r, cfg.Resolver, cfg.TrustHeader)
			if !ok {
				rejectUnresolved(w, cfg.Policy)
				return
			}

			token, _ := httputil.SessionTokenFromRequest(r)

			ident, err := cfg.Gate.AuthenticateCandidate(r.Context(), candidate, token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					httputil.Error(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				httputil.DomainError(w, cfg.Logger, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, ident.User)
			ctx = context.WithValue(ctx, TenantKey, ident.Tenant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
