package operations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ynot-advisory/landing/models"
	"github.com/ynot-advisory/landing/notify"
	"go.uber.org/zap"
)

var ErrDeliveryFailed = errors.New("delivery failed")

// Meta carries request details that are not part of the form itself.
type Meta struct {
	RemoteIP string
}

type Result struct {
	ID        string
	Duplicate bool
	Simulated bool
}

// Submitter hands a validated submission to its destination.
type Submitter interface {
	Submit(ctx context.Context, s models.ContactSubmission, meta Meta) (Result, error)
	Mode() string
}

// SimulatedSubmitter waits a fixed delay and always succeeds.
type SimulatedSubmitter struct {
	delay  time.Duration
	logger *zap.Logger
}

func NewSimulatedSubmitter(delay time.Duration, logger *zap.Logger) *SimulatedSubmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedSubmitter{delay: delay, logger: logger}
}

func (s *SimulatedSubmitter) Mode() string { return "simulate" }

func (s *SimulatedSubmitter) Submit(ctx context.Context, sub models.ContactSubmission, meta Meta) (Result, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.C:
	}

	id := uuid.NewString()
	s.logger.Info("simulated contact submission", zap.String("id", id), zap.String("ip", meta.RemoteIP))
	return Result{ID: id, Simulated: true}, nil
}

type DeliveryConfig struct {
	Inbox           string
	Retention       time.Duration
	DuplicateWindow time.Duration
}

// DeliveringSubmitter records each submission and emails it to the inbox.
// An identical email+message pair inside the duplicate window is answered
// with the earlier result and not sent again. A duplicate that arrives while
// the first send is still running waits for it and shares its outcome.
type DeliveringSubmitter struct {
	store  *SubmissionStore
	sender notify.EmailSender
	cfg    DeliveryConfig
	logger *zap.Logger
	now    func() time.Time

	mu       sync.Mutex
	inflight map[string]*delivery
}

type delivery struct {
	done chan struct{}
	res  Result
	err  error
}

func NewDeliveringSubmitter(store *SubmissionStore, sender notify.EmailSender, cfg DeliveryConfig, logger *zap.Logger) *DeliveringSubmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeliveringSubmitter{
		store:    store,
		sender:   sender,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		inflight: make(map[string]*delivery),
	}
}

func (d *DeliveringSubmitter) Mode() string { return "deliver" }

func deliveryKey(email, message string) string {
	return strings.ToLower(email) + "\x00" + message
}

func (d *DeliveringSubmitter) Submit(ctx context.Context, in models.ContactSubmission, meta Meta) (Result, error) {
	sub, pending, dup, err := d.record(in, meta)
	if err != nil {
		return Result{}, err
	}
	if pending != nil {
		select {
		case <-pending.done:
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
		if pending.err != nil {
			return Result{}, pending.err
		}
		d.logger.Info("duplicate contact submission suppressed", zap.String("id", pending.res.ID))
		return Result{ID: pending.res.ID, Duplicate: true}, nil
	}
	if dup {
		d.logger.Info("duplicate contact submission suppressed", zap.String("id", sub.ID), zap.String("email", sub.Email))
		return Result{ID: sub.ID, Duplicate: true}, nil
	}

	res, err := d.deliver(ctx, sub)
	d.finish(deliveryKey(in.Email, in.Message), res, err)
	return res, err
}

func (d *DeliveringSubmitter) deliver(ctx context.Context, sub *models.Submission) (Result, error) {
	if err := d.sender.Send(ctx, notify.ContactEmail(d.cfg.Inbox, *sub)); err != nil {
		// Forget the record so a manual resubmission is not treated as a duplicate.
		if derr := d.store.Delete(sub.ID); derr != nil {
			d.logger.Error("failed to drop undelivered submission", zap.String("id", sub.ID), zap.Error(derr))
		}
		d.logger.Error("contact submission not delivered", zap.String("id", sub.ID), zap.Error(err))
		return Result{}, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	d.logger.Info("contact submission delivered", zap.String("id", sub.ID), zap.String("email", sub.Email))
	return Result{ID: sub.ID}, nil
}

func (d *DeliveringSubmitter) finish(key string, res Result, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.inflight[key]
	if !ok {
		return
	}
	delete(d.inflight, key)
	p.res, p.err = res, err
	close(p.done)
}

// record returns either the stored submission this caller must send, a
// pending delivery to wait on, or an earlier delivered duplicate.
func (d *DeliveringSubmitter) record(in models.ContactSubmission, meta Meta) (*models.Submission, *delivery, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := deliveryKey(in.Email, in.Message)
	now := d.now()
	if d.cfg.DuplicateWindow > 0 {
		if p, ok := d.inflight[key]; ok {
			return nil, p, false, nil
		}
		prev, err := d.store.FindRecent(in.Email, in.Message, now.Add(-d.cfg.DuplicateWindow))
		if err != nil {
			return nil, nil, false, err
		}
		if prev != nil {
			return prev, nil, true, nil
		}
	}

	sub := &models.Submission{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Company:   in.Company,
		Message:   in.Message,
		RemoteIP:  meta.RemoteIP,
		Received:  now,
		Expiry:    now.Add(d.cfg.Retention),
	}
	if err := d.store.Insert(sub); err != nil {
		return nil, nil, false, err
	}
	if d.cfg.DuplicateWindow > 0 {
		d.inflight[key] = &delivery{done: make(chan struct{})}
	}
	return sub, nil, false, nil
}
