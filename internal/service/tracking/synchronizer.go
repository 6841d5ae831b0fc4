package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/pkg/logger"
)

const (
	DefaultPollInterval = 10 * time.Second

	countdownTick = time.Second
)

// Synchronizer keeps one order's tracking view fresh: it polls for a new
// snapshot on every poll interval and counts the remaining time down locally
// every second in between. A successful refresh replaces the view wholesale,
// superseding whatever the countdown produced. It never stops on its own,
// even after the order reaches a terminal status; the caller decides when to
// cancel.
type Synchronizer struct {
	snapshots    Snapshotter
	log          logger.Logger
	orderID      uuid.UUID
	pollInterval time.Duration

	mu   sync.RWMutex
	view *View
}

func NewSynchronizer(snapshots Snapshotter, log logger.Logger, orderID uuid.UUID, pollInterval time.Duration) *Synchronizer {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &Synchronizer{
		snapshots:    snapshots,
		log:          log,
		orderID:      orderID,
		pollInterval: pollInterval,
	}
}

// Run blocks until ctx is cancelled. The warm-up refresh is skipped when a
// prior Refresh already produced a view. A failed refresh keeps the last good
// view; the countdown keeps running off it.
func (s *Synchronizer) Run(ctx context.Context) error {
	if _, ok := s.View(); !ok {
		s.refresh(ctx)
	}

	poll := time.NewTicker(s.pollInterval)
	defer poll.Stop()

	countdown := time.NewTicker(countdownTick)
	defer countdown.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-poll.C:
			s.refresh(ctx)
		case <-countdown.C:
			s.Tick()
		}
	}
}

// Refresh fetches a snapshot and replaces the current view with it.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	view, err := s.snapshots.Snapshot(ctx, s.orderID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.view = view
	s.mu.Unlock()
	return nil
}

// Tick advances the local countdown by one second, stopping at zero. It does
// nothing while there is no view yet or the delivery time is still unknown.
func (s *Synchronizer) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view == nil || s.view.Calculating {
		return
	}

	s.view.Remaining -= countdownTick
	if s.view.Remaining < 0 {
		s.view.Remaining = 0
	}
}

// View returns a copy of the current view. ok is false until the first
// successful refresh.
func (s *Synchronizer) View() (view View, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.view == nil {
		return View{}, false
	}
	return *s.view, true
}

func (s *Synchronizer) refresh(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn("tracking refresh failed",
			logger.NewField("order_id", s.orderID.String()),
			logger.NewField("error", err.Error()),
		)
	}
}
