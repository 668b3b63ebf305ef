package domain

import (
	"context"
	"time"
)

// Invitation is an event definition reachable by its unique token.
// swagger:model Invitation
type Invitation struct {
	ID            int64     `json:"id"`
	Token         string    `json:"token"`
	EventName     string    `json:"event_name"`
	EventDate     string    `json:"event_date"`
	EventTime     string    `json:"event_time"`
	EventLocation string    `json:"event_location"`
	Message       *string   `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewInvitation returns a new Invitation. ID and CreatedAt are set by the repository on create.
func NewInvitation(token, eventName, eventDate, eventTime, eventLocation string, message *string) *Invitation {
	return &Invitation{
		Token:         token,
		EventName:     eventName,
		EventDate:     eventDate,
		EventTime:     eventTime,
		EventLocation: eventLocation,
		Message:       message,
	}
}

// InvitationRepository defines storage operations for invitations.
// Invitations are never updated or deleted through this contract.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	GetByToken(ctx context.Context, token string) (*Invitation, error)
	GetByID(ctx context.Context, id int64) (*Invitation, error)
	Count(ctx context.Context) (int64, error)
}
