package session

import (
	"log/slog"
	"net/http"

	"github.com/orgable/orgable/internal/http/middleware"
	"github.com/orgable/orgable/internal/httputil"
	"github.com/orgable/orgable/pkg/auth"
)

// Handler serves logout endpoints.
type Handler struct {
	logger   *slog.Logger
	sessions *auth.SessionService
	cookies  httputil.CookieConfig
}

// NewHandler creates a new session handler.
func NewHandler(logger *slog.Logger, sessions *auth.SessionService, cookies httputil.CookieConfig) *Handler {
	return &Handler{logger: logger, sessions: sessions, cookies: cookies}
}

// Logout handles POST /v1/auth/logout. From the caller's point of view it
// always succeeds, whether or not a session existed.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := httputil.SessionTokenFromRequest(r); ok {
		if err := h.sessions.Revoke(r.Context(), token); err != nil {
			h.logger.Error("session revoke failed", "error", err)
		}
	}
	httputil.ClearSessionCookie(w, h.cookies)
	httputil.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// LogoutAll handles POST /v1/auth/logout/all. It deletes every session
// the authenticated user holds within the resolved tenant; sessions of
// the same user id under another tenant are untouched.
func (h *Handler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.sessions.RevokeAll(r.Context(), user.TenantID, user.ID); err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}
	httputil.ClearSessionCookie(w, h.cookies)
	httputil.JSON(w, http.StatusOK, map[string]string{"status": "logged out everywhere"})
}
