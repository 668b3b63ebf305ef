package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"eventrsvp/internal/domain"
)

// Dispatcher sends RSVP confirmation emails from a single background worker
// fed by a bounded queue. Delivery is best-effort: failures are logged and
// never retried.
type Dispatcher struct {
	invitationRepo domain.InvitationRepository
	notifier       domain.NotificationService
	timeout        time.Duration
	logger         *slog.Logger

	queue chan domain.RSVPConfirmationRequest
	done  chan struct{}

	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewDispatcher returns a Dispatcher with room for queueSize pending requests.
// Call Start to begin processing.
func NewDispatcher(
	invitationRepo domain.InvitationRepository,
	notifier domain.NotificationService,
	queueSize int,
	timeout time.Duration,
	logger *slog.Logger,
) *Dispatcher {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Dispatcher{
		invitationRepo: invitationRepo,
		notifier:       notifier,
		timeout:        timeout,
		logger:         logger,
		queue:          make(chan domain.RSVPConfirmationRequest, queueSize),
		done:           make(chan struct{}),
	}
}

// Start launches the worker. Calling it more than once has no effect.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true
	go d.run()
}

// Enqueue hands req to the worker without blocking. It returns false when the
// queue is full or the dispatcher is closed.
func (d *Dispatcher) Enqueue(req domain.RSVPConfirmationRequest) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warn("notification dropped: dispatcher closed", "invitation_id", req.InvitationID)
		return false
	}
	select {
	case d.queue <- req:
		return true
	default:
		d.logger.Warn("notification dropped: queue full", "invitation_id", req.InvitationID, "capacity", cap(d.queue))
		return false
	}
}

// Close stops accepting requests and waits for queued ones to be processed,
// or for ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for req := range d.queue {
		d.handle(req)
	}
}

func (d *Dispatcher) handle(req domain.RSVPConfirmationRequest) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("notification worker panic", "panic", r, "invitation_id", req.InvitationID)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	inv, err := d.invitationRepo.GetByID(ctx, req.InvitationID)
	if err != nil {
		d.logger.Error("notification skipped: invitation lookup failed", "invitation_id", req.InvitationID, "err", err)
		return
	}
	data := &domain.RSVPConfirmationEmailData{
		Email:         req.Email,
		GuestName:     req.GuestName,
		EventName:     inv.EventName,
		EventDate:     inv.EventDate,
		EventTime:     inv.EventTime,
		EventLocation: inv.EventLocation,
	}
	if err := d.notifier.SendRSVPConfirmation(ctx, data); err != nil {
		d.logger.Error("rsvp confirmation failed", "invitation_id", req.InvitationID, "err", err)
	}
}
