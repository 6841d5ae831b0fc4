package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

// Service owns the order delivery pipeline: pending, confirmed, preparing,
// out_for_delivery, delivered, plus terminal cancelled reachable from any
// non-delivered state. Status only ever moves forward.
type Service struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Service) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]entities.Order, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidOrderID
	}

	orders, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}
	return orders, nil
}

// Advance moves the order to target, which must be the immediate successor of
// the stored status, or cancelled while the order is not delivered. Anything
// else fails with ErrInvalidTransition and leaves the stored status as is.
func (s *Service) Advance(ctx context.Context, id uuid.UUID, target entities.OrderStatusType) (*entities.Order, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidOrderID
	}

	target = normalize(target)
	if !knownStatus(target) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, target)
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !transitionAllowed(current.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}

		if current.Status == target {
			// cancel of an already cancelled order is a no-op
			updated = current
			return nil
		}

		updated, err = s.repository.UpdateStatus(ctx, id, current.Status, target)
		if err != nil {
			if errors.Is(err, ErrStatusConflict) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
			}
			return fmt.Errorf("update status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	return s.Advance(ctx, id, entities.OrderCancelled)
}

// normalize folds the payment-flow alias into the canonical initial status.
func normalize(status entities.OrderStatusType) entities.OrderStatusType {
	if status == entities.OrderPlaced {
		return entities.OrderPending
	}
	return status
}

func knownStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending,
		entities.OrderConfirmed,
		entities.OrderPreparing,
		entities.OrderOutForDelivery,
		entities.OrderDelivered,
		entities.OrderCancelled:
		return true
	default:
		return false
	}
}

func transitionAllowed(from, to entities.OrderStatusType) bool {
	from = normalize(from)

	if to == entities.OrderCancelled {
		return from != entities.OrderDelivered
	}

	next, ok := from.Next()
	return ok && next == to
}
