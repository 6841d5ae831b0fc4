//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/piyushjain76296/OnTrackEats/internal/handlers/tasks/assignment_sweep"
	"github.com/piyushjain76296/OnTrackEats/internal/pkg/config"
	"github.com/piyushjain76296/OnTrackEats/internal/pkg/factory/status_handle"

	menuRepo "github.com/piyushjain76296/OnTrackEats/internal/repository/menu"
	orderRepo "github.com/piyushjain76296/OnTrackEats/internal/repository/order"
	partnerRepo "github.com/piyushjain76296/OnTrackEats/internal/repository/partner"
	paymentRepo "github.com/piyushjain76296/OnTrackEats/internal/repository/payment"

	assignmentService "github.com/piyushjain76296/OnTrackEats/internal/service/assignment"
	catalogService "github.com/piyushjain76296/OnTrackEats/internal/service/catalog"
	checkoutService "github.com/piyushjain76296/OnTrackEats/internal/service/checkout"
	orderService "github.com/piyushjain76296/OnTrackEats/internal/service/order"
	statuseventService "github.com/piyushjain76296/OnTrackEats/internal/service/statusevent"
	trackingService "github.com/piyushjain76296/OnTrackEats/internal/service/tracking"

	"github.com/piyushjain76296/OnTrackEats/pkg/logger"
	"github.com/piyushjain76296/OnTrackEats/pkg/tx"
)

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,

		provideOrderRepository,
		providePartnerRepository,
		provideMenuRepository,
		providePaymentRepository,

		provideServiceOrder,
		provideServiceCheckout,
		provideServiceAssignment,
		provideServiceTracking,
		provideServiceCatalog,

		provideAssignmentSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCheckout), new(*checkoutService.Service)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Service)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Service)),
		wire.Bind(new(ServiceCatalog), new(*catalogService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(checkoutService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(checkoutService.PaymentRepository), new(*paymentRepo.Repository)),
		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.PartnerRepository), new(*partnerRepo.Repository)),
		wire.Bind(new(trackingService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(trackingService.PartnerRepository), new(*partnerRepo.Repository)),
		wire.Bind(new(trackingService.Assigner), new(*assignmentService.Service)),
		wire.Bind(new(catalogService.MenuRepository), new(*menuRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(checkoutService.TxManager), new(*tx.Manager)),

		wire.Bind(new(assignment_sweep.Service), new(*assignmentService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-status-events).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		providePartnerRepository,

		provideServiceOrder,
		provideServiceAssignment,
		provideStatusHandlerFactory,
		provideServiceStatusEvent,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.PartnerRepository), new(*partnerRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(statuseventService.OrderService), new(*orderService.Service)),
		wire.Bind(new(statuseventService.Assigner), new(*assignmentService.Service)),
		wire.Bind(new(statuseventService.HandlerFactory), new(*status_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
