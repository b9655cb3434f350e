package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orgable/orgable/internal/http/features/dashboard"
	"github.com/orgable/orgable/internal/http/features/me"
	"github.com/orgable/orgable/internal/http/features/orgsettings"
	"github.com/orgable/orgable/internal/http/features/password"
	"github.com/orgable/orgable/internal/http/features/session"
	"github.com/orgable/orgable/internal/http/middleware"
	"github.com/orgable/orgable/internal/httputil"
	"github.com/orgable/orgable/pkg/auth"
	"github.com/orgable/orgable/pkg/repository"
	"github.com/orgable/orgable/pkg/tenant"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger             *slog.Logger
	Resolver           *tenant.Resolver
	Directory          *tenant.Directory
	Credentials        *auth.CredentialsService
	Sessions           *auth.SessionService
	Gate               *auth.Gate
	Views              *repository.ViewFactory
	Cookies            httputil.CookieConfig
	TrustTenantHeader  bool
	UnresolvedPolicy   middleware.Policy
	MaxRequestBodySize int64
}

// NewRouter creates the HTTP router with all routes registered. Tenant
// resolution runs before any tenant-facing handler; protected routes run
// the full authentication gate.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.MaxRequestBodySize <= 0 {
		cfg.MaxRequestBodySize = 1 << 20 // 1 MB
	}

	r := chi.NewRouter()

	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RequestSizeLimit(cfg.MaxRequestBodySize))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	resolveTenant := middleware.ResolveTenant(middleware.TenantConfig{
		Resolver:    cfg.Resolver,
		Directory:   cfg.Directory,
		TrustHeader: cfg.TrustTenantHeader,
		Policy:      cfg.UnresolvedPolicy,
	})
	requireAuth := middleware.Auth(middleware.AuthConfig{
		Gate:        cfg.Gate,
		Resolver:    cfg.Resolver,
		TrustHeader: cfg.TrustTenantHeader,
		Policy:      cfg.UnresolvedPolicy,
		Logger:      cfg.Logger,
	})

	passwordHandler := password.NewHandler(cfg.Logger, cfg.Credentials, cfg.Sessions, cfg.Cookies)
	r.Group(func(r chi.Router) {
		r.Use(resolveTenant)
		r.Post("/v1/auth/signup", passwordHandler.Signup)
		r.Post("/v1/auth/login", passwordHandler.Login)
	})

	sessionHandler := session.NewHandler(cfg.Logger, cfg.Sessions, cfg.Cookies)
	r.Post("/v1/auth/logout", sessionHandler.Logout)
	r.With(requireAuth).Post("/v1/auth/logout/all", sessionHandler.LogoutAll)

	meHandler := me.NewHandler(cfg.Logger, cfg.Views)
	dashboardHandler := dashboard.NewHandler(cfg.Logger, cfg.Views)
	settingsHandler := orgsettings.NewHandler(cfg.Logger, cfg.Views)
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/v1/me", meHandler.GetMe)
		r.Delete("/v1/me", meHandler.DeleteMe)
		r.Get("/v1/dashboard", dashboardHandler.Overview)
		r.Get("/v1/org/users", dashboardHandler.Users)
		r.Get("/v1/org/settings", settingsHandler.Get)
		r.Put("/v1/org/settings", settingsHandler.Put)
		r.Patch("/v1/org/settings", settingsHandler.Patch)
		r.Delete("/v1/org/settings", settingsHandler.Delete)
	})

	return r
}
