package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventrsvp/internal/domain"
)

var csvHeader = []string{"Event", "Name", "Status", "Timestamp"}

type adminService struct {
	invitationRepo domain.InvitationRepository
	responseRepo   domain.ResponseRepository
	contextTimeout time.Duration
}

// NewAdminService returns the AdminService backing the dashboard.
func NewAdminService(invitationRepo domain.InvitationRepository, responseRepo domain.ResponseRepository, timeout time.Duration) domain.AdminService {
	return &adminService{
		invitationRepo: invitationRepo,
		responseRepo:   responseRepo,
		contextTimeout: timeout,
	}
}

func (s *adminService) ListAll(ctx context.Context) ([]*domain.ResponseView, domain.ResponseStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	views, err := s.responseRepo.List(ctx)
	if err != nil {
		return nil, domain.ResponseStats{}, err
	}
	if views == nil {
		views = []*domain.ResponseView{}
	}
	return views, domain.ComputeStats(views), nil
}

// Search filters the full listing in memory. Stats describe the filtered set.
func (s *adminService) Search(ctx context.Context, query string) ([]*domain.ResponseView, domain.ResponseStats, error) {
	views, _, err := s.ListAll(ctx)
	if err != nil {
		return nil, domain.ResponseStats{}, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return views, domain.ComputeStats(views), nil
	}
	matched := make([]*domain.ResponseView, 0, len(views))
	for _, v := range views {
		if v.Matches(query) {
			matched = append(matched, v)
		}
	}
	return matched, domain.ComputeStats(matched), nil
}

func (s *adminService) Remove(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.responseRepo.Delete(ctx, id)
}

// ExportCSV renders the listing as CSV with a header line. Lines are joined by
// a single newline with none after the last row.
func (s *adminService) ExportCSV(ctx context.Context) ([]byte, error) {
	views, _, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, fmt.Errorf("%w: no data to export", domain.ErrNotFound)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, v := range views {
		record := []string{v.EventName, v.Name, string(v.Status), v.Timestamp.UTC().Format(time.RFC3339)}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (s *adminService) CreateInvitation(ctx context.Context, in domain.CreateInvitationInput) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	eventName := strings.TrimSpace(in.EventName)
	eventDate := strings.TrimSpace(in.EventDate)
	eventTime := strings.TrimSpace(in.EventTime)
	eventLocation := strings.TrimSpace(in.EventLocation)
	if eventName == "" || eventDate == "" || eventTime == "" || eventLocation == "" {
		return nil, fmt.Errorf("%w: missing required fields (event_name, event_date, event_time, event_location)", domain.ErrInvalidInput)
	}
	token := strings.TrimSpace(in.Token)
	if token == "" {
		token = uuid.NewString()
	}

	inv := domain.NewInvitation(token, eventName, eventDate, eventTime, eventLocation, in.Message)
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}
