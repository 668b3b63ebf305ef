package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventrsvp/internal/domain"
)

// SeedInvitation describes the invitation created on first start.
type SeedInvitation struct {
	Token         string
	EventName     string
	EventDate     string
	EventTime     string
	EventLocation string
	Message       string
}

// SeedDefaultInvitation creates seed when no invitation exists yet. It reports
// whether a row was created. A concurrent insert of the same token is not an error.
func SeedDefaultInvitation(ctx context.Context, repo domain.InvitationRepository, seed SeedInvitation, logger *slog.Logger) (bool, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count invitations: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	var message *string
	if seed.Message != "" {
		message = &seed.Message
	}
	inv := domain.NewInvitation(seed.Token, seed.EventName, seed.EventDate, seed.EventTime, seed.EventLocation, message)
	if err := repo.Create(ctx, inv); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("create seed invitation: %w", err)
	}
	logger.InfoContext(ctx, "seeded default invitation", "token", inv.Token, "id", inv.ID)
	return true, nil
}
