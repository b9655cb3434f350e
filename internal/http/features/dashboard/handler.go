package dashboard

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/orgable/orgable/internal/http/middleware"
	"github.com/orgable/orgable/internal/httputil"
	"github.com/orgable/orgable/pkg/domain"
	"github.com/orgable/orgable/pkg/repository"
)

// Handler serves tenant-scoped aggregates. Everything it returns comes
// through a view bound to the tenant resolved from the request.
type Handler struct {
	logger *slog.Logger
	views  *repository.ViewFactory
}

// NewHandler creates a new dashboard handler.
func NewHandler(logger *slog.Logger, views *repository.ViewFactory) *Handler {
	return &Handler{logger: logger, views: views}
}

type overviewResponse struct {
	TenantID           string          `json:"tenant_id"`
	Subdomain          string          `json:"subdomain"`
	UserCount          int             `json:"user_count"`
	ActiveSessionCount int             `json:"active_session_count"`
	Settings           json.RawMessage `json:"settings"`
}

type userListItem struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Overview handles GET /v1/dashboard.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	tn, ok := middleware.GetTenant(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	view := h.views.View(tn.ID)

	userCount, err := view.CountUsers(r.Context())
	if err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}

	sessionCount, err := view.CountActiveSessions(r.Context(), time.Now())
	if err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}

	settingsDoc := json.RawMessage("null")
	settings, err := view.Settings(r.Context())
	if err != nil && !errors.Is(err, domain.ErrSettingsNotFound) {
		httputil.DomainError(w, h.logger, err)
		return
	}
	if settings != nil {
		settingsDoc = settings.Document
	}

	httputil.JSON(w, http.StatusOK, overviewResponse{
		TenantID:           tn.ID.String(),
		Subdomain:          tn.Subdomain,
		UserCount:          userCount,
		ActiveSessionCount: sessionCount,
		Settings:           settingsDoc,
	})
}

// Users handles GET /v1/org/users.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	tn, ok := middleware.GetTenant(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	users, err := h.views.View(tn.ID).Users(r.Context())
	if err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}

	items := make([]userListItem, 0, len(users))
	for _, u := range users {
		item := userListItem{
			ID:        u.ID.String(),
			Email:     u.Email,
			CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		}
		if u.Name != nil {
			item.Name = *u.Name
		}
		items = append(items, item)
	}
	httputil.JSON(w, http.StatusOK, map[string]any{"users": items})
}
