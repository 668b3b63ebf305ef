package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventrsvp/internal/domain"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{
		DB: db,
	}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (token, event_name, event_date, event_time, event_location, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query, inv.Token, inv.EventName, inv.EventDate, inv.EventTime, inv.EventLocation, inv.Message).
		Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == pqUniqueViolation {
			return fmt.Errorf("%w: invitation token %q already exists", domain.ErrConflict, inv.Token)
		}
		return err
	}
	return nil
}

func (r *invitationRepository) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	query := `
		SELECT id, token, event_name, event_date, event_time, event_location, message, created_at
		FROM invitations
		WHERE token = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, token))
}

func (r *invitationRepository) GetByID(ctx context.Context, id int64) (*domain.Invitation, error) {
	query := `
		SELECT id, token, event_name, event_date, event_time, event_location, message, created_at
		FROM invitations
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *invitationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM invitations`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *invitationRepository) scanOne(row *sql.Row) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	var msgNull sql.NullString
	err := row.Scan(&inv.ID, &inv.Token, &inv.EventName, &inv.EventDate, &inv.EventTime, &inv.EventLocation, &msgNull, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if msgNull.Valid {
		inv.Message = &msgNull.String
	}
	return inv, nil
}
