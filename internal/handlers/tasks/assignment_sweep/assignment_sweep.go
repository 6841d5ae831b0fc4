package assignment_sweep

import (
	"context"
	"time"

	"github.com/piyushjain76296/OnTrackEats/pkg/logger"
)

type Service interface {
	SweepUnassigned(ctx context.Context) (int64, error)
}

// AssignmentSweep periodically picks up in-flight orders that still have no
// delivery partner, for example when no partner was available at confirmation
// time.
type AssignmentSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAssignmentSweep(log logger.Logger, service Service, interval time.Duration) *AssignmentSweep {
	return &AssignmentSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AssignmentSweep) TTL() time.Duration {
	return a.interval
}

func (a *AssignmentSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	assigned, err := a.service.SweepUnassigned(ctxWithTimeout)

	if assigned > 0 {
		a.log.With(
			logger.NewField("assigned_orders", assigned),
		).Info("assignment sweep")
	}

	return err
}

func (a *AssignmentSweep) Info() string {
	return "assignment sweep"
}
