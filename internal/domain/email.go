package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RSVPConfirmationEmailData holds data for the accepted-RSVP confirmation email.
type RSVPConfirmationEmailData struct {
	Email         string
	GuestName     string
	EventName     string
	EventDate     string
	EventTime     string
	EventLocation string
}

// NotificationService defines the contract for sending domain-level emails.
type NotificationService interface {
	SendRSVPConfirmation(ctx context.Context, data *RSVPConfirmationEmailData) error
}

// RSVPConfirmationRequest is a queued request to confirm an accepted RSVP.
type RSVPConfirmationRequest struct {
	Email        string
	GuestName    string
	InvitationID int64
}

// NotificationDispatcher hands confirmation requests to a background worker.
// Enqueue never blocks; it reports false when the request was dropped.
type NotificationDispatcher interface {
	Enqueue(req RSVPConfirmationRequest) bool
}
