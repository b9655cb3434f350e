package password

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/orgable/orgable/internal/http/middleware"
	"github.com/orgable/orgable/internal/httputil"
	"github.com/orgable/orgable/pkg/auth"
	"github.com/orgable/orgable/pkg/domain"
)

// Handler serves signup and login for the tenant resolved from the
// request.
type Handler struct {
	logger   *slog.Logger
	creds    *auth.CredentialsService
	sessions *auth.SessionService
	cookies  httputil.CookieConfig
}

// NewHandler creates a new password handler.
func NewHandler(logger *slog.Logger, creds *auth.CredentialsService, sessions *auth.SessionService, cookies httputil.CookieConfig) *Handler {
	return &Handler{
		logger:   logger,
		creds:    creds,
		sessions: sessions,
		cookies:  cookies,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// toUserResponse shapes the outward user payload. The password digest
// never leaves the server.
func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{ID: u.ID.String(), Email: u.Email}
	if u.Name != nil {
		resp.Name = *u.Name
	}
	return resp
}

// Signup handles POST /v1/auth/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	tn, ok := middleware.GetTenant(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httputil.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.creds.Signup(r.Context(), tn.ID, req.Email, req.Password, req.Name)
	if err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}

	token, err := h.sessions.Issue(r.Context(), user.ID, tn.ID)
	if err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}

	httputil.SetSessionCookie(w, token, h.sessions.TTL(), h.cookies)
	httputil.JSON(w, http.StatusCreated, toUserResponse(user))
}

// Login handles POST /v1/auth/login. An unknown email and a wrong
// password produce identical responses.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	tn, ok := middleware.GetTenant(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httputil.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.creds.Login(r.Context(), tn.ID, req.Email, req.Password)
	if err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}

	token, err := h.sessions.Issue(r.Context(), user.ID, tn.ID)
	if err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}

	httputil.SetSessionCookie(w, token, h.sessions.TTL(), h.cookies)
	httputil.JSON(w, http.StatusOK, toUserResponse(user))
}
