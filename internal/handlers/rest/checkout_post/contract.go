//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_post_test
package checkout_post

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
	Checkout(ctx context.Context, userID uuid.UUID, cart entities.Cart, details entities.DeliveryDetails) ([]entities.Order, error)
}
