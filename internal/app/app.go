package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/piyushjain76296/OnTrackEats/internal/handlers/rest/checkout_post"
	"github.com/piyushjain76296/OnTrackEats/internal/handlers/rest/menu_get"
	"github.com/piyushjain76296/OnTrackEats/internal/handlers/rest/order_assign_post"
	"github.com/piyushjain76296/OnTrackEats/internal/handlers/rest/order_cancel_post"
	"github.com/piyushjain76296/OnTrackEats/internal/handlers/rest/order_get"
	"github.com/piyushjain76296/OnTrackEats/internal/handlers/rest/order_status_put"
	"github.com/piyushjain76296/OnTrackEats/internal/handlers/rest/order_track_get"
	"github.com/piyushjain76296/OnTrackEats/internal/handlers/rest/order_track_stream_get"
	"github.com/piyushjain76296/OnTrackEats/internal/handlers/rest/orders_get"
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

	"github.com/piyushjain76296/OnTrackEats/pkg/background"
	"github.com/piyushjain76296/OnTrackEats/pkg/logger"
	"github.com/piyushjain76296/OnTrackEats/pkg/querier"
	"github.com/piyushjain76296/OnTrackEats/pkg/tx"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceCheckout   ServiceCheckout
	ServiceOrder      ServiceOrder
	ServiceAssignment ServiceAssignment
	ServiceTracking   ServiceTracking
	ServiceCatalog    ServiceCatalog
	BackgroundWorkers *background.Worker
}

type ServiceCheckout interface {
	checkout_post.Service
}

type ServiceOrder interface {
	order_get.Service
	orders_get.Service
	order_status_put.Service
	order_cancel_post.Service
}

type ServiceAssignment interface {
	order_assign_post.Service
}

type ServiceTracking interface {
	order_track_get.Service
	order_track_stream_get.Service
}

type ServiceCatalog interface {
	menu_get.Service
}

type KafkaWorkerApp struct {
	StatusService *statuseventService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func providePartnerRepository(querier *querier.Querier) *partnerRepo.Repository {
	return partnerRepo.New(querier)
}

func provideMenuRepository(querier *querier.Querier) *menuRepo.Repository {
	return menuRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, txManager)
}

func provideServiceCheckout(
	orders checkoutService.OrderRepository,
	payments checkoutService.PaymentRepository,
	txManager checkoutService.TxManager,
) *checkoutService.Service {
	return checkoutService.New(orders, payments, txManager)
}

func provideServiceAssignment(
	orders assignmentService.OrderRepository,
	partners assignmentService.PartnerRepository,
) *assignmentService.Service {
	return assignmentService.New(orders, partners)
}

func provideServiceTracking(
	log logger.Logger,
	orders trackingService.OrderRepository,
	partners trackingService.PartnerRepository,
	assigner trackingService.Assigner,
) *trackingService.Service {
	return trackingService.New(orders, partners, assigner, log)
}

func provideServiceCatalog(menus catalogService.MenuRepository) *catalogService.Service {
	return catalogService.New(menus)
}

func provideStatusHandlerFactory(
	orders statuseventService.OrderService,
	assigner statuseventService.Assigner,
) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(orders, assigner)
}

func provideServiceStatusEvent(factory statuseventService.HandlerFactory) *statuseventService.Service {
	return statuseventService.New(factory)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.AssignmentSweepInterval)
}

func provideAssignmentSweepTask(
	log logger.Logger,
	assignmentSvc assignment_sweep.Service,
	interval SweepInterval,
) *assignment_sweep.AssignmentSweep {
	return assignment_sweep.NewAssignmentSweep(log, assignmentSvc, time.Duration(interval))
}

func provideTaskList(
	assignmentSweepTask *assignment_sweep.AssignmentSweep,
) []background.Task {
	return []background.Task{
		assignmentSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
