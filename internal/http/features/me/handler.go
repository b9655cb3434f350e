package me

import (
	"log/slog"
	"net/http"

	"github.com/orgable/orgable/internal/http/middleware"
	"github.com/orgable/orgable/internal/httputil"
	"github.com/orgable/orgable/pkg/repository"
)

// Handler serves the authenticated user's own account.
type Handler struct {
	logger *slog.Logger
	views  *repository.ViewFactory
}

// NewHandler creates a new me handler.
func NewHandler(logger *slog.Logger, views *repository.ViewFactory) *Handler {
	return &Handler{logger: logger, views: views}
}

type meResponse struct {
	ID     string         `json:"id"`
	Email  string         `json:"email"`
	Name   string         `json:"name,omitempty"`
	Tenant tenantResponse `json:"tenant"`
}

type tenantResponse struct {
	ID        string `json:"id"`
	Subdomain string `json:"subdomain"`
	Name      string `json:"name"`
}

// GetMe handles GET /v1/me.
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	tn, ok2 := middleware.GetTenant(r.Context())
	if !ok || !ok2 {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp := meResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Tenant: tenantResponse{
			ID:        tn.ID.String(),
			Subdomain: tn.Subdomain,
			Name:      tn.Name,
		},
	}
	if user.Name != nil {
		resp.Name = *user.Name
	}
	httputil.JSON(w, http.StatusOK, resp)
}

// DeleteMe handles DELETE /v1/me: the account and every session it holds
// within the tenant are removed.
func (h *Handler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	tn, ok2 := middleware.GetTenant(r.Context())
	if !ok || !ok2 {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	view := h.views.View(tn.ID)
	if err := view.RevokeUserSessions(r.Context(), user.ID); err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}
	if err := view.DeleteUser(r.Context(), user.ID); err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
