package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"eventrsvp/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeRSVPService implements domain.RSVPService for handler tests.
type fakeRSVPService struct {
	invitation  *domain.Invitation
	getErr      error
	acceptErr   error
	declineErr  error
	lastToken   string
	lastAccept  domain.AcceptInput
	lastDecline domain.DeclineInput
	nextID      int64
}

func (f *fakeRSVPService) GetInvitation(_ context.Context, token string) (*domain.Invitation, error) {
	f.lastToken = token
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.invitation, nil
}

func (f *fakeRSVPService) Accept(_ context.Context, in domain.AcceptInput) (*domain.Response, error) {
	f.lastAccept = in
	if f.acceptErr != nil {
		return nil, f.acceptErr
	}
	return &domain.Response{ID: f.nextID, InvitationID: in.InvitationID, Name: in.Name, Status: domain.StatusAccepted, Attendees: 1}, nil
}

func (f *fakeRSVPService) Decline(_ context.Context, in domain.DeclineInput) (*domain.Response, error) {
	f.lastDecline = in
	if f.declineErr != nil {
		return nil, f.declineErr
	}
	return &domain.Response{ID: f.nextID, InvitationID: in.InvitationID, Name: in.Name, Status: domain.StatusRejected, Reason: in.Reason}, nil
}

// fakeAdminService implements domain.AdminService for handler tests.
type fakeAdminService struct {
	views       []*domain.ResponseView
	stats       domain.ResponseStats
	searchErr   error
	lastQuery   string
	changes     int64
	removeErr   error
	lastRemove  int64
	csv         []byte
	exportErr   error
	created     *domain.Invitation
	createErr   error
	lastCreate  domain.CreateInvitationInput
	searchCalls int
}

func (f *fakeAdminService) ListAll(ctx context.Context) ([]*domain.ResponseView, domain.ResponseStats, error) {
	return f.Search(ctx, "")
}

func (f *fakeAdminService) Search(_ context.Context, query string) ([]*domain.ResponseView, domain.ResponseStats, error) {
	f.searchCalls++
	f.lastQuery = query
	if f.searchErr != nil {
		return nil, domain.ResponseStats{}, f.searchErr
	}
	return f.views, f.stats, nil
}

func (f *fakeAdminService) Remove(_ context.Context, id int64) (int64, error) {
	f.lastRemove = id
	return f.changes, f.removeErr
}

func (f *fakeAdminService) ExportCSV(_ context.Context) ([]byte, error) {
	return f.csv, f.exportErr
}

func (f *fakeAdminService) CreateInvitation(_ context.Context, in domain.CreateInvitationInput) (*domain.Invitation, error) {
	f.lastCreate = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

// fakeGate implements domain.AccessGate for handler tests.
type fakeGate struct {
	password  string
	token     string
	expiresAt time.Time
	loginErr  error
}

func (f *fakeGate) Verify(_ context.Context, password string) bool {
	return password != "" && password == f.password
}

func (f *fakeGate) Login(ctx context.Context, password string) (string, time.Time, error) {
	if f.loginErr != nil {
		return "", time.Time{}, f.loginErr
	}
	if !f.Verify(ctx, password) {
		return "", time.Time{}, domain.ErrUnauthorized
	}
	return f.token, f.expiresAt, nil
}

func (f *fakeGate) Authenticate(_ context.Context, token string) error {
	if token == "" || token != f.token {
		return domain.ErrUnauthorized
	}
	return nil
}
