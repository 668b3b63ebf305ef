package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventrsvp/internal/domain"
)

type rsvpService struct {
	invitationRepo domain.InvitationRepository
	responseRepo   domain.ResponseRepository
	dispatcher     domain.NotificationDispatcher
	contextTimeout time.Duration
	logger         *slog.Logger
}

// NewRSVPService returns the guest-facing RSVPService. Confirmation emails for
// accepted responses are handed to dispatcher and never delay the caller.
func NewRSVPService(
	invitationRepo domain.InvitationRepository,
	responseRepo domain.ResponseRepository,
	dispatcher domain.NotificationDispatcher,
	timeout time.Duration,
	logger *slog.Logger,
) domain.RSVPService {
	return &rsvpService{
		invitationRepo: invitationRepo,
		responseRepo:   responseRepo,
		dispatcher:     dispatcher,
		contextTimeout: timeout,
		logger:         logger,
	}
}

func (s *rsvpService) GetInvitation(ctx context.Context, token string) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: invitation not found", domain.ErrNotFound)
	}
	return s.invitationRepo.GetByToken(ctx, token)
}

func (s *rsvpService) Accept(ctx context.Context, in domain.AcceptInput) (*domain.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name := strings.TrimSpace(in.Name)
	if in.InvitationID <= 0 || name == "" {
		return nil, fmt.Errorf("%w: missing required fields (invitation_id, name)", domain.ErrInvalidInput)
	}
	if err := s.ensureInvitation(ctx, in.InvitationID); err != nil {
		return nil, err
	}

	var email *string
	if e := strings.TrimSpace(in.Email); e != "" {
		email = &e
	}
	resp := domain.NewAcceptedResponse(in.InvitationID, name, email, in.Notes)
	if err := s.responseRepo.Insert(ctx, resp); err != nil {
		return nil, err
	}

	if email != nil {
		req := domain.RSVPConfirmationRequest{
			Email:        *email,
			GuestName:    name,
			InvitationID: in.InvitationID,
		}
		if !s.dispatcher.Enqueue(req) {
			s.logger.WarnContext(ctx, "confirmation email not queued", "response_id", resp.ID)
		}
	}
	return resp, nil
}

func (s *rsvpService) Decline(ctx context.Context, in domain.DeclineInput) (*domain.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name := strings.TrimSpace(in.Name)
	if in.InvitationID <= 0 || name == "" {
		return nil, fmt.Errorf("%w: missing required fields (invitation_id, name)", domain.ErrInvalidInput)
	}
	if err := s.ensureInvitation(ctx, in.InvitationID); err != nil {
		return nil, err
	}

	resp := domain.NewRejectedResponse(in.InvitationID, name, in.Reason)
	if err := s.responseRepo.Insert(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ensureInvitation maps a missing invitation to ErrInvalidInput: a submission
// against an unknown invitation is a bad request, not a missing resource.
func (s *rsvpService) ensureInvitation(ctx context.Context, id int64) error {
	_, err := s.invitationRepo.GetByID(ctx, id)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: invitation does not exist", domain.ErrInvalidInput)
	}
	return err
}
