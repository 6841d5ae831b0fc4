//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_track_stream_get_test
package order_track_stream_get

import (
	"context"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/service/tracking"
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
	Snapshot(ctx context.Context, orderID uuid.UUID) (*tracking.View, error)
}
