package statusevent

import (
	"context"
	"fmt"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

// Service applies order status change events coming off the message bus. The
// actual per-status behavior lives in the handler factory; Service only
// validates the event and dispatches.
type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, ErrMissingEventFields
	}

	executeFn, err := s.statusFactory.GetHandler(*orderModify.Status)
	if err != nil {
		return nil, err
	}

	order, err := executeFn(ctx, *orderModify.ID)
	if err != nil {
		return nil, fmt.Errorf("handle %s event: %w", *orderModify.Status, err)
	}

	return order, nil
}
