//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)

	// AssignPartner sets the partner on the order only while no partner is
	// set yet, in a single statement. It reports whether this call won the
	// slot; false means another writer got there first.
	AssignPartner(ctx context.Context, orderID, partnerID uuid.UUID) (bool, error)

	ListUnassignedIDs(ctx context.Context, limit uint64) ([]uuid.UUID, error)
}

type PartnerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryPartner, error)
	ListAvailable(ctx context.Context) ([]entities.DeliveryPartner, error)
}
