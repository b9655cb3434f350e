package orgsettings

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/orgable/orgable/internal/http/middleware"
	"github.com/orgable/orgable/internal/httputil"
	"github.com/orgable/orgable/pkg/domain"
	"github.com/orgable/orgable/pkg/repository"
)

// Handler serves the per-tenant settings document.
type Handler struct {
	logger *slog.Logger
	views  *repository.ViewFactory
}

// NewHandler creates a new settings handler.
func NewHandler(logger *slog.Logger, views *repository.ViewFactory) *Handler {
	return &Handler{logger: logger, views: views}
}

// Get handles GET /v1/org/settings.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	tn, ok := middleware.GetTenant(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	settings, err := h.views.View(tn.ID).Settings(r.Context())
	if err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]any{"settings": settings.Document})
}

// Put handles PUT /v1/org/settings: create-or-replace.
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	tn, ok := middleware.GetTenant(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	doc, err := readDocument(r)
	if err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}

	if err := h.views.View(tn.ID).UpsertSettings(r.Context(), doc); err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]any{"settings": doc})
}

// Patch handles PATCH /v1/org/settings: replace an existing document,
// 404 when none exists.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	tn, ok := middleware.GetTenant(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	doc, err := readDocument(r)
	if err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}

	if err := h.views.View(tn.ID).UpdateSettings(r.Context(), doc); err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]any{"settings": doc})
}

// Delete handles DELETE /v1/org/settings, idempotently.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tn, ok := middleware.GetTenant(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.views.View(tn.ID).DeleteSettings(r.Context()); err != nil {
		httputil.DomainError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func readDocument(r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, domain.ErrInvalidDocument
	}
	if !json.Valid(body) {
		return nil, domain.ErrInvalidDocument
	}
	return json.RawMessage(body), nil
}
