package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/orgable/orgable/pkg/domain"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error body with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// DomainError maps a domain error onto the stable caller-visible status
// set. Tenant-resolution failures and bad sessions collapse into one
// generic unauthorized outcome, and internal failures are logged in full
// here but surface with no detail.
func DomainError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrTenantNotFound),
		errors.Is(err, domain.ErrSessionInvalid),
		errors.Is(err, domain.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidDocument):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUserAlreadyExists):
		Error(w, http.StatusConflict, "email already registered")
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSettingsNotFound):
		Error(w, http.StatusNotFound, "not found")
	default:
		logger.Error("internal error", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
	}
}
