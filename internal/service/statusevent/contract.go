//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statusevent_test
package statusevent

import (
	"context"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

type OrderService interface {
	Advance(ctx context.Context, id uuid.UUID, target entities.OrderStatusType) (*entities.Order, error)
	Cancel(ctx context.Context, id uuid.UUID) (*entities.Order, error)
}

type Assigner interface {
	EnsureAssigned(ctx context.Context, orderID uuid.UUID) (*entities.DeliveryPartner, error)
}

type (
	ExecuteFn      func(ctx context.Context, orderID uuid.UUID) (*entities.Order, error)
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
