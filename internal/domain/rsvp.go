package domain

import "context"

// AcceptInput carries an accept submission. Any attendee count supplied by a
// client is deliberately absent: accepted responses always record DefaultAttendees.
type AcceptInput struct {
	InvitationID int64
	Name         string
	Email        string
	Notes        string
}

// DeclineInput carries a decline submission.
type DeclineInput struct {
	InvitationID int64
	Name         string
	Reason       string
}

// RSVPService defines guest-facing operations.
type RSVPService interface {
	GetInvitation(ctx context.Context, token string) (*Invitation, error)
	Accept(ctx context.Context, in AcceptInput) (*Response, error)
	Decline(ctx context.Context, in DeclineInput) (*Response, error)
}
