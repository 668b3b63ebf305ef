package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"eventrsvp/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeInvitationRepo is an in-memory InvitationRepository for tests.
type fakeInvitationRepo struct {
	mu        sync.Mutex
	byID      map[int64]*domain.Invitation
	nextID    int64
	createErr error
	getErr    error
	countErr  error
}

func newFakeInvitationRepo(invs ...*domain.Invitation) *fakeInvitationRepo {
	f := &fakeInvitationRepo{byID: make(map[int64]*domain.Invitation), nextID: 1}
	for _, inv := range invs {
		if inv.ID >= f.nextID {
			f.nextID = inv.ID + 1
		}
		f.byID[inv.ID] = inv
	}
	return f
}

func (f *fakeInvitationRepo) Create(ctx context.Context, inv *domain.Invitation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Token == inv.Token {
			return domain.ErrConflict
		}
	}
	inv.ID = f.nextID
	inv.CreatedAt = time.Now()
	f.nextID++
	f.byID[inv.ID] = inv
	return nil
}

func (f *fakeInvitationRepo) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, inv := range f.byID {
		if inv.Token == token {
			return inv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeInvitationRepo) GetByID(ctx context.Context, id int64) (*domain.Invitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	inv, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func (f *fakeInvitationRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.byID)), nil
}

// fakeResponseRepo is an in-memory ResponseRepository for tests. List returns
// views newest first, the way the store does.
type fakeResponseRepo struct {
	invitations *fakeInvitationRepo
	responses   []*domain.Response
	nextID      int64
	insertErr   error
	listErr     error
	deleteErr   error
	views       []*domain.ResponseView
}

func newFakeResponseRepo(invitations *fakeInvitationRepo) *fakeResponseRepo {
	return &fakeResponseRepo{invitations: invitations, nextID: 1}
}

func (f *fakeResponseRepo) Insert(ctx context.Context, resp *domain.Response) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if _, err := f.invitations.GetByID(ctx, resp.InvitationID); err != nil {
		return domain.ErrInvalidInput
	}
	resp.ID = f.nextID
	resp.Timestamp = time.Now()
	f.nextID++
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeResponseRepo) List(ctx context.Context) ([]*domain.ResponseView, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.views != nil {
		return f.views, nil
	}
	out := make([]*domain.ResponseView, 0, len(f.responses))
	for i := len(f.responses) - 1; i >= 0; i-- {
		r := f.responses[i]
		inv, _ := f.invitations.GetByID(ctx, r.InvitationID)
		v := &domain.ResponseView{Response: *r}
		if inv != nil {
			v.EventName = inv.EventName
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeResponseRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	for i, r := range f.responses {
		if r.ID == id {
			f.responses = append(f.responses[:i], f.responses[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// fakeDispatcher records enqueued requests.
type fakeDispatcher struct {
	requests []domain.RSVPConfirmationRequest
	reject   bool
}

func (f *fakeDispatcher) Enqueue(req domain.RSVPConfirmationRequest) bool {
	if f.reject {
		return false
	}
	f.requests = append(f.requests, req)
	return true
}

// fakeNotifier records confirmation emails. When block is set, each send waits
// for a value on it.
type fakeNotifier struct {
	mu    sync.Mutex
	sent  []*domain.RSVPConfirmationEmailData
	err   error
	block chan struct{}
	calls chan struct{}
}

func (f *fakeNotifier) SendRSVPConfirmation(ctx context.Context, data *domain.RSVPConfirmationEmailData) error {
	if f.calls != nil {
		f.calls <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, data)
	return f.err
}

func (f *fakeNotifier) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

type fakeRenderer struct {
	name string
	data any
	err  error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	f.name, f.data = name, data
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

var errStore = errors.New("connection reset")
