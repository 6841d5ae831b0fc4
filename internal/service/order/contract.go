//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.Order, error)

	// UpdateStatus persists the transition only when the stored status still
	// equals from at write time.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.OrderStatusType) (*entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
