package domain

import (
	"context"
	"time"
)

// CreateInvitationInput carries an admin provisioning request. Token is generated when empty.
type CreateInvitationInput struct {
	Token         string
	EventName     string
	EventDate     string
	EventTime     string
	EventLocation string
	Message       *string
}

// AdminService defines the dashboard operations over responses.
type AdminService interface {
	ListAll(ctx context.Context) ([]*ResponseView, ResponseStats, error)
	Search(ctx context.Context, query string) ([]*ResponseView, ResponseStats, error)
	Remove(ctx context.Context, id int64) (int64, error)
	ExportCSV(ctx context.Context) ([]byte, error)
	CreateInvitation(ctx context.Context, in CreateInvitationInput) (*Invitation, error)
}

// AccessGate checks the shared admin secret and manages the server-issued admin credential.
type AccessGate interface {
	// Verify reports whether password matches the configured secret. It has no side effects.
	Verify(ctx context.Context, password string) bool
	// Login verifies password and issues an expiring admin credential.
	Login(ctx context.Context, password string) (token string, expiresAt time.Time, err error)
	// Authenticate validates a credential previously issued by Login.
	Authenticate(ctx context.Context, token string) error
}

// PasswordHasher hashes and compares secrets.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues signed admin credentials.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (token string, expiresAt time.Time, err error)
}

// TokenVerifier verifies a credential and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}
