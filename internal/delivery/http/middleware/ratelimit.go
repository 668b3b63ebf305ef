package middleware

import (
	"log/slog"
	"net/http"

	"github.com/didip/tollbooth/v7"

	h "eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/domain"
)

// RateLimit returns a wrapper allowing ratePerSec requests per second per client IP.
// Excess requests get 429 with the standard JSON error body.
func RateLimit(ratePerSec float64, logger *slog.Logger) func(http.HandlerFunc) http.Handler {
	if ratePerSec <= 0 {
		ratePerSec = 1
	}
	lmt := tollbooth.NewLimiter(ratePerSec, nil)
	lmt.SetIPLookups([]string{"RemoteAddr"})

	return func(next http.HandlerFunc) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if httpErr := tollbooth.LimitByRequest(lmt, w, r); httpErr != nil {
				logger.WarnContext(r.Context(), "rate limited", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				h.WriteDomainError(w, r, logger, domain.ErrRateLimited, "")
				return
			}
			next(w, r)
		})
	}
}
