package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/domain"
)

const missingRSVPFields = "Missing required fields (invitation_id, name)"

// AcceptRSVPRequest is the request body for POST /api/rsvp/accept.
// Attendees is accepted for compatibility and ignored: every acceptance counts one guest.
type AcceptRSVPRequest struct {
	InvitationID int64   `json:"invitation_id"`
	Name         string  `json:"name"`
	Email        *string `json:"email"`
	Notes        *string `json:"notes"`
	Attendees    *int    `json:"attendees,omitempty"`
}

// Validate implements Validator.
func (a AcceptRSVPRequest) Validate() []string {
	if a.InvitationID <= 0 || strings.TrimSpace(a.Name) == "" {
		return []string{missingRSVPFields}
	}
	return nil
}

// RejectRSVPRequest is the request body for POST /api/rsvp/reject.
type RejectRSVPRequest struct {
	InvitationID int64   `json:"invitation_id"`
	Name         string  `json:"name"`
	Reason       *string `json:"reason"`
}

// Validate implements Validator.
func (rr RejectRSVPRequest) Validate() []string {
	if rr.InvitationID <= 0 || strings.TrimSpace(rr.Name) == "" {
		return []string{missingRSVPFields}
	}
	return nil
}

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// Accept godoc
// @Summary Accept an invitation
// @Description Records an ACCEPTED response for one guest. A confirmation email is queued when an email address is given.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param rsvp body AcceptRSVPRequest true "Accept submission"
// @Success 200 {object} helpers.MessageResponse "message: RSVP Accepted"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/rsvp/accept [post]
func (c *RSVPController) Accept(w http.ResponseWriter, r *http.Request) {
	var req AcceptRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	resp, err := c.Service.Accept(r.Context(), domain.AcceptInput{
		InvitationID: req.InvitationID,
		Name:         req.Name,
		Email:        deref(req.Email),
		Notes:        deref(req.Notes),
	})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Message: "RSVP Accepted", ID: resp.ID})
}

// Reject godoc
// @Summary Decline an invitation
// @Description Records a REJECTED response with an optional reason.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param rsvp body RejectRSVPRequest true "Decline submission"
// @Success 200 {object} helpers.MessageResponse "message: RSVP Rejected"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/rsvp/reject [post]
func (c *RSVPController) Reject(w http.ResponseWriter, r *http.Request) {
	var req RejectRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	resp, err := c.Service.Decline(r.Context(), domain.DeclineInput{
		InvitationID: req.InvitationID,
		Name:         req.Name,
		Reason:       deref(req.Reason),
	})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Message: "RSVP Rejected", ID: resp.ID})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
