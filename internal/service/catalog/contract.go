//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

type MenuRepository interface {
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]entities.MenuItem, error)
}
