//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_get_test
package menu_get

import (
	"context"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
	"github.com/piyushjain76296/OnTrackEats/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RestaurantMenu(ctx context.Context, restaurantID uuid.UUID) ([]entities.MenuItem, error)
}
