package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/delivery/http/middleware"
	"eventrsvp/internal/domain"
)

const adminCookiePath = "/api/admin"

// VerifyPasswordRequest is the request body for POST /api/admin/verify-password.
type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

// VerifyPasswordResponse is the body for POST /api/admin/verify-password.
// Token and ExpiresAt are present only on success.
type VerifyPasswordResponse struct {
	Success   bool       `json:"success"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// CreateInvitationRequest is the request body for POST /api/admin/invitations.
// A token is generated when omitted.
type CreateInvitationRequest struct {
	Token         string  `json:"token"`
	EventName     string  `json:"event_name"`
	EventDate     string  `json:"event_date"`
	EventTime     string  `json:"event_time"`
	EventLocation string  `json:"event_location"`
	Message       *string `json:"message"`
}

// Validate implements Validator.
func (c CreateInvitationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.EventName) == "" {
		errs = append(errs, "event_name is required")
	}
	if strings.TrimSpace(c.EventDate) == "" {
		errs = append(errs, "event_date is required")
	}
	if strings.TrimSpace(c.EventTime) == "" {
		errs = append(errs, "event_time is required")
	}
	if strings.TrimSpace(c.EventLocation) == "" {
		errs = append(errs, "event_location is required")
	}
	return errs
}

type AdminController struct {
	Logger       *slog.Logger
	Service      domain.AdminService
	Gate         domain.AccessGate
	CookieSecure bool
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService, gate domain.AccessGate, cookieSecure bool) *AdminController {
	return &AdminController{
		Logger:       logger,
		Service:      svc,
		Gate:         gate,
		CookieSecure: cookieSecure,
	}
}

// VerifyPassword godoc
// @Summary Log in to the admin dashboard
// @Description Checks the shared admin password. On success returns a signed, expiring credential and sets it as an HttpOnly cookie. A wrong password answers success=false.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body VerifyPasswordRequest true "Admin password"
// @Success 200 {object} controllers.VerifyPasswordResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 429 {object} helpers.APIError "code: rate_limited"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/admin/verify-password [post]
func (c *AdminController) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	var req VerifyPasswordRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, expiresAt, err := c.Gate.Login(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			c.Logger.WarnContext(r.Context(), "admin login failed", "remote", r.RemoteAddr)
			helpers.WriteJSON(w, http.StatusOK, VerifyPasswordResponse{Success: false})
			return
		}
		helpers.WriteInternalError(w, r, c.Logger, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    token,
		Path:     adminCookiePath,
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   c.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	helpers.WriteJSON(w, http.StatusOK, VerifyPasswordResponse{Success: true, Token: token, ExpiresAt: &expiresAt})
}

// Logout godoc
// @Summary Log out of the admin dashboard
// @Description Clears the admin cookie. The credential itself stays valid until it expires.
// @Tags admin
// @Produce json
// @Security AdminAuth
// @Success 200 {object} controllers.VerifyPasswordResponse "success: true"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Router /api/admin/logout [post]
func (c *AdminController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    "",
		Path:     adminCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	helpers.WriteJSON(w, http.StatusOK, VerifyPasswordResponse{Success: true})
}

// ListResponses godoc
// @Summary List RSVP responses
// @Description Returns every response joined with its event name, newest first. With q, only responses whose name, email, notes or reason contain q (case-insensitive).
// @Tags admin
// @Produce json
// @Security AdminAuth
// @Param q query string false "Search text"
// @Success 200 {array} domain.ResponseView
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/admin/responses [get]
func (c *AdminController) ListResponses(w http.ResponseWriter, r *http.Request) {
	views, _, err := c.Service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, views)
}

// Stats godoc
// @Summary Dashboard counters
// @Description Total, accepted, rejected and guest counts, optionally over a search.
// @Tags admin
// @Produce json
// @Security AdminAuth
// @Param q query string false "Search text"
// @Success 200 {object} domain.ResponseStats
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/admin/stats [get]
func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	_, stats, err := c.Service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, stats)
}

// DeleteResponse godoc
// @Summary Delete a response
// @Description Removes one response. Deleting an unknown id succeeds with changes=0.
// @Tags admin
// @Produce json
// @Security AdminAuth
// @Param id path int true "Response ID"
// @Success 200 {object} helpers.MessageResponse "message: Response deleted"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/admin/responses/{id} [delete]
func (c *AdminController) DeleteResponse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Invalid response id")
		return
	}
	changes, err := c.Service.Remove(r.Context(), id)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Message: "Response deleted", Changes: &changes})
}

// Export godoc
// @Summary Export responses as CSV
// @Description Downloads Event,Name,Status,Timestamp rows, newest first.
// @Tags admin
// @Produce text/csv
// @Security AdminAuth
// @Success 200 {file} file "rsvp_responses.csv"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/admin/export [get]
func (c *AdminController) Export(w http.ResponseWriter, r *http.Request) {
	data, err := c.Service.ExportCSV(r.Context())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err, "No data to export")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=rsvp_responses.csv")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// CreateInvitation godoc
// @Summary Create an invitation
// @Description Provisions a new event invitation. The token is generated when omitted.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param invitation body CreateInvitationRequest true "Invitation"
// @Success 201 {object} domain.Invitation
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 409 {object} helpers.APIError "code: conflict"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/admin/invitations [post]
func (c *AdminController) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	var req CreateInvitationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	inv, err := c.Service.CreateInvitation(r.Context(), domain.CreateInvitationInput{
		Token:         req.Token,
		EventName:     req.EventName,
		EventDate:     req.EventDate,
		EventTime:     req.EventTime,
		EventLocation: req.EventLocation,
		Message:       req.Message,
	})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, inv)
}
