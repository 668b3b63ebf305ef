package services

import (
	"context"
	"fmt"
	"time"

	"eventrsvp/internal/domain"
)

const adminSubject = "admin"

type accessGate struct {
	hasher       domain.PasswordHasher
	passwordHash string
	issuer       domain.TokenIssuer
	verifier     domain.TokenVerifier
	sessionTTL   time.Duration
}

// NewAccessGate returns an AccessGate for the single shared admin secret.
// passwordHash must have been produced by hasher.
func NewAccessGate(
	hasher domain.PasswordHasher,
	passwordHash string,
	issuer domain.TokenIssuer,
	verifier domain.TokenVerifier,
	sessionTTL time.Duration,
) domain.AccessGate {
	return &accessGate{
		hasher:       hasher,
		passwordHash: passwordHash,
		issuer:       issuer,
		verifier:     verifier,
		sessionTTL:   sessionTTL,
	}
}

func (g *accessGate) Verify(ctx context.Context, password string) bool {
	if password == "" || g.passwordHash == "" {
		return false
	}
	return g.hasher.Compare(g.passwordHash, password) == nil
}

func (g *accessGate) Login(ctx context.Context, password string) (string, time.Time, error) {
	if !g.Verify(ctx, password) {
		return "", time.Time{}, fmt.Errorf("%w: invalid password", domain.ErrUnauthorized)
	}
	token, expiresAt, err := g.issuer.Issue(adminSubject, g.sessionTTL)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue admin token: %w", err)
	}
	return token, expiresAt, nil
}

func (g *accessGate) Authenticate(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: missing credential", domain.ErrUnauthorized)
	}
	subject, err := g.verifier.Verify(token)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if subject != adminSubject {
		return fmt.Errorf("%w: unexpected subject", domain.ErrUnauthorized)
	}
	return nil
}
