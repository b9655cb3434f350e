package httputil

import (
	"net/http"
	"time"
)

// SessionCookieName is the credential cookie holding the raw session
// token.
const SessionCookieName = "session_token"

// CookieConfig holds cookie configuration.
type CookieConfig struct {
	Domain string
	Secure bool // true when the deployment is TLS-terminated
}

// SetSessionCookie places the raw session token in the client credential.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionTokenFromRequest extracts the raw session token from the cookie.
func SessionTokenFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
