package controllers

import (
	"log/slog"
	"net/http"

	"eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/domain"
)

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewInvitationController(logger *slog.Logger, svc domain.RSVPService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// GetInvitation godoc
// @Summary Get an invitation by token
// @Description Returns the event details a guest sees on the invitation page.
// @Tags invitations
// @Produce json
// @Param token path string true "Invitation token"
// @Success 200 {object} domain.Invitation
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/invitation/{token} [get]
func (c *InvitationController) GetInvitation(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	inv, err := c.Service.GetInvitation(r.Context(), token)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err, "Invitation not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, inv)
}
