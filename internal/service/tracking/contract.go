//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
}

type PartnerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryPartner, error)
}

// Assigner fills the order's partner slot when it is still empty.
type Assigner interface {
	EnsureAssigned(ctx context.Context, orderID uuid.UUID) (*entities.DeliveryPartner, error)
}

// Snapshotter produces tracking views; the synchronizer polls it.
type Snapshotter interface {
	Snapshot(ctx context.Context, orderID uuid.UUID) (*View, error)
}
