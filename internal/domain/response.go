package domain

import (
	"context"
	"strings"
	"time"
)

// RSVPStatus is the answer recorded on a Response.
type RSVPStatus string

const (
	StatusAccepted RSVPStatus = "ACCEPTED"
	StatusRejected RSVPStatus = "REJECTED"
)

// Valid reports whether s is one of the two persistable statuses.
func (s RSVPStatus) Valid() bool {
	return s == StatusAccepted || s == StatusRejected
}

// DefaultAttendees is the attendee count recorded for every accepted RSVP.
const DefaultAttendees = 1

// Response is a single guest's accept or decline submission against one invitation.
// Responses are append-only: they are created once and only ever deleted.
// swagger:model Response
type Response struct {
	ID           int64      `json:"id"`
	InvitationID int64      `json:"invitation_id"`
	Name         string     `json:"name"`
	Email        *string    `json:"email"`
	Status       RSVPStatus `json:"status"`
	Attendees    int        `json:"attendees"`
	Notes        string     `json:"notes"`
	Reason       string     `json:"reason"`
	Timestamp    time.Time  `json:"timestamp"`
}

// NewAcceptedResponse returns an ACCEPTED response with the fixed attendee count.
func NewAcceptedResponse(invitationID int64, name string, email *string, notes string) *Response {
	return &Response{
		InvitationID: invitationID,
		Name:         name,
		Email:        email,
		Status:       StatusAccepted,
		Attendees:    DefaultAttendees,
		Notes:        notes,
	}
}

// NewRejectedResponse returns a REJECTED response carrying the optional reason.
func NewRejectedResponse(invitationID int64, name, reason string) *Response {
	return &Response{
		InvitationID: invitationID,
		Name:         name,
		Status:       StatusRejected,
		Reason:       reason,
	}
}

// ResponseView is a Response joined with its invitation's event name.
// swagger:model ResponseView
type ResponseView struct {
	Response
	EventName string `json:"event_name"`
}

// Matches reports whether query is a case-insensitive substring of the name,
// email, notes or reason. Empty fields never match; an empty query matches everything.
func (v *ResponseView) Matches(query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	fields := []string{v.Name, v.Notes, v.Reason}
	if v.Email != nil {
		fields = append(fields, *v.Email)
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// ResponseStats are the dashboard counters derived from a listing.
// swagger:model ResponseStats
type ResponseStats struct {
	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Guests   int `json:"guests"`
}

// ComputeStats derives counters from views. Guests sums attendees of accepted responses.
func ComputeStats(views []*ResponseView) ResponseStats {
	stats := ResponseStats{Total: len(views)}
	for _, v := range views {
		switch v.Status {
		case StatusAccepted:
			stats.Accepted++
			stats.Guests += v.Attendees
		case StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

// ResponseRepository defines storage operations for RSVP responses.
type ResponseRepository interface {
	// Insert validates and stores resp, setting ID and Timestamp. It fails with
	// ErrInvalidInput when the invitation does not exist, the name is empty or
	// the status is not persistable.
	Insert(ctx context.Context, resp *Response) error
	// List returns all responses joined with their event name, newest first.
	List(ctx context.Context) ([]*ResponseView, error)
	// Delete removes the response and reports the number of rows removed (0 or 1).
	Delete(ctx context.Context, id int64) (int64, error)
}
