package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	h "eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/domain"
)

// AdminCookieName is the HttpOnly cookie carrying the admin credential.
const AdminCookieName = "rsvp_admin"

// AdminToken extracts the admin credential from the Authorization header or,
// failing that, from the admin cookie. The header wins when both are present.
func AdminToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		const prefix = "Bearer "
		if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
			return strings.TrimSpace(auth[len(prefix):])
		}
		return ""
	}
	if c, err := r.Cookie(AdminCookieName); err == nil {
		return c.Value
	}
	return ""
}

// RequireAdmin returns a wrapper that admits only requests carrying a valid admin credential.
// Otherwise it responds with 401 and does not call next.
func RequireAdmin(gate domain.AccessGate, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := AdminToken(r)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing admin credential")
				return
			}
			if err := gate.Authenticate(r.Context(), token); err != nil {
				logger.DebugContext(r.Context(), "admin credential rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired admin credential")
				return
			}
			next(w, r)
		}
	}
}
