package status_handle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
	"github.com/piyushjain76296/OnTrackEats/internal/service/assignment"
	"github.com/piyushjain76296/OnTrackEats/internal/service/statusevent"
)

type StatusHandlerFactory struct {
	orderService statusevent.OrderService
	assigner     statusevent.Assigner
}

func NewStatusHandlerFactory(orderService statusevent.OrderService, assigner statusevent.Assigner) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		orderService: orderService,
		assigner:     assigner,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (statusevent.ExecuteFn, error) {
	switch status {
	case entities.OrderConfirmed:
		return f.confirmedHandler, nil
	case entities.OrderPreparing, entities.OrderOutForDelivery, entities.OrderDelivered:
		return f.advanceHandler(status), nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", statusevent.ErrUndefinedStatus, status)
	}
}

// confirmedHandler advances the order and gets a delivery partner moving. A
// missing partner is not fatal, the assignment sweep picks the order up later.
func (f *StatusHandlerFactory) confirmedHandler(ctx context.Context, orderID uuid.UUID) (*entities.Order, error) {
	order, err := f.orderService.Advance(ctx, orderID, entities.OrderConfirmed)
	if err != nil {
		return nil, fmt.Errorf("confirm order %s: %w", orderID, err)
	}

	if _, err := f.assigner.EnsureAssigned(ctx, orderID); err != nil {
		if !errors.Is(err, assignment.ErrNoPartnerAvailable) {
			return nil, fmt.Errorf("assign partner for confirmed order %s: %w", orderID, err)
		}
	}

	return order, nil
}

func (f *StatusHandlerFactory) advanceHandler(target entities.OrderStatusType) statusevent.ExecuteFn {
	return func(ctx context.Context, orderID uuid.UUID) (*entities.Order, error) {
		order, err := f.orderService.Advance(ctx, orderID, target)
		if err != nil {
			return nil, fmt.Errorf("advance order %s to %s: %w", orderID, target, err)
		}
		return order, nil
	}
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID uuid.UUID) (*entities.Order, error) {
	order, err := f.orderService.Cancel(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	return order, nil
}
