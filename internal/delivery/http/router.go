package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventrsvp/internal/delivery/http/controllers"
	"eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/delivery/http/middleware"
	"eventrsvp/internal/domain"
)

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterConfig carries the settings the router needs beyond its controllers.
type RouterConfig struct {
	CORSAllowedOrigins []string
	StaticDir          string
	VerifyRatePerSec   float64
}

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Invitation *controllers.InvitationController
	RSVP       *controllers.RSVPController
	Admin      *controllers.AdminController
}

// NewRouter initializes the HTTP router with all application routes wrapped in
// request logging and CORS.
func NewRouter(logger *slog.Logger, c Controllers, gate domain.AccessGate, db Pinger, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	requireAdmin := middleware.RequireAdmin(gate, logger)

	// Guest
	mux.HandleFunc("GET /api/invitation/{token}", c.Invitation.GetInvitation)
	mux.HandleFunc("POST /api/rsvp/accept", c.RSVP.Accept)
	mux.HandleFunc("POST /api/rsvp/reject", c.RSVP.Reject)

	// Admin
	mux.Handle("POST /api/admin/verify-password", middleware.RateLimit(cfg.VerifyRatePerSec, logger)(c.Admin.VerifyPassword))
	mux.HandleFunc("POST /api/admin/logout", requireAdmin(c.Admin.Logout))
	mux.HandleFunc("GET /api/admin/responses", requireAdmin(c.Admin.ListResponses))
	mux.HandleFunc("GET /api/admin/stats", requireAdmin(c.Admin.Stats))
	mux.HandleFunc("DELETE /api/admin/responses/{id}", requireAdmin(c.Admin.DeleteResponse))
	mux.HandleFunc("GET /api/admin/export", requireAdmin(c.Admin.Export))
	mux.HandleFunc("POST /api/admin/invitations", requireAdmin(c.Admin.CreateInvitation))

	mux.HandleFunc("GET /health", healthHandler(db))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))
}

// healthHandler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "status: ok"
// @Failure 503 {object} helpers.APIError "code: internal_error"
// @Router /health [get]
func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "database unavailable")
			return
		}
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
