//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_test
package checkout

import (
	"context"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

type OrderRepository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, record entities.PaymentRecord) (*entities.PaymentRecord, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
