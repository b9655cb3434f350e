package middleware

import (
	"log/slog"
	"net/http"

	"github.com/orgable/orgable/internal/httputil"
)

// Recover converts handler panics into opaque 500 responses. The panic is
// logged in full; the caller sees nothing of it.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logger.Error("panic in handler", "panic", p, "path", r.URL.Path)
					httputil.Error(w, http.StatusInternalServerError, "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
