package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"eventrsvp/internal/domain"
)

type responseRepository struct {
	DB *sql.DB
}

func NewResponseRepository(db *sql.DB) domain.ResponseRepository {
	return &responseRepository{
		DB: db,
	}
}

// Insert writes the row only if the invitation exists, in a single statement,
// so no orphan response can be observed.
func (r *responseRepository) Insert(ctx context.Context, resp *domain.Response) error {
	if strings.TrimSpace(resp.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !resp.Status.Valid() {
		return fmt.Errorf("%w: status %q is not allowed", domain.ErrInvalidInput, resp.Status)
	}
	query := `
		INSERT INTO rsvp_responses (invitation_id, name, email, status, attendees, notes, reason)
		SELECT $1::bigint, $2::text, $3::text, $4::text, $5::integer, $6::text, $7::text
		WHERE EXISTS (SELECT 1 FROM invitations WHERE id = $1::bigint)
		RETURNING id, timestamp
	`
	err := r.DB.QueryRowContext(ctx, query,
		resp.InvitationID, resp.Name, resp.Email, string(resp.Status), resp.Attendees, resp.Notes, resp.Reason,
	).Scan(&resp.ID, &resp.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: invitation %d does not exist", domain.ErrInvalidInput, resp.InvitationID)
		}
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == pqForeignKeyViolation {
			return fmt.Errorf("%w: invitation %d does not exist", domain.ErrInvalidInput, resp.InvitationID)
		}
		return err
	}
	return nil
}

func (r *responseRepository) List(ctx context.Context) ([]*domain.ResponseView, error) {
	query := `
		SELECT r.id, r.invitation_id, r.name, r.email, r.status, r.attendees, r.notes, r.reason, r.timestamp, i.event_name
		FROM rsvp_responses r
		JOIN invitations i ON r.invitation_id = i.id
		ORDER BY r.timestamp DESC, r.id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]*domain.ResponseView, 0)
	for rows.Next() {
		v := &domain.ResponseView{}
		var email, notes, reason sql.NullString
		var status string
		if err := rows.Scan(&v.ID, &v.InvitationID, &v.Name, &email, &status, &v.Attendees, &notes, &reason, &v.Timestamp, &v.EventName); err != nil {
			return nil, err
		}
		if email.Valid {
			v.Email = &email.String
		}
		v.Status = domain.RSVPStatus(status)
		v.Notes = notes.String
		v.Reason = reason.String
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *responseRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM rsvp_responses WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
