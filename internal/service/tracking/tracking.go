package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
	"github.com/piyushjain76296/OnTrackEats/internal/service/assignment"
	"github.com/piyushjain76296/OnTrackEats/pkg/logger"
)

// View is one tracking snapshot. Remaining is always recomputed from the
// stored delivery time, never carried over from a previous snapshot, so a
// drifted countdown corrects itself on the next refresh.
type View struct {
	Order   entities.Order
	Partner *entities.DeliveryPartner

	// Remaining is zero once the delivery time has passed.
	Remaining time.Duration
	// Calculating is set while the order has no delivery time yet.
	Calculating bool

	FetchedAt time.Time
}

type Service struct {
	orders   OrderRepository
	partners PartnerRepository
	assigner Assigner
	log      logger.Logger

	now func() time.Time
}

func New(orders OrderRepository, partners PartnerRepository, assigner Assigner, log logger.Logger) *Service {
	return &Service{
		orders:   orders,
		partners: partners,
		assigner: assigner,
		log:      log,
		now:      time.Now,
	}
}

// Snapshot loads the order and derives the traveler-facing tracking state.
// When the order is still waiting for a partner, Snapshot tries to assign one
// on the spot; not finding one is not an error, the view simply carries no
// partner until a later snapshot succeeds.
func (s *Service) Snapshot(ctx context.Context, orderID uuid.UUID) (*View, error) {
	if orderID == uuid.Nil {
		return nil, ErrInvalidOrderID
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	partner, err := s.resolvePartner(ctx, order)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	view := View{
		Order:     *order,
		Partner:   partner,
		FetchedAt: now,
	}

	if order.DeliveryTime == nil {
		view.Calculating = true
		return &view, nil
	}

	if remaining := order.DeliveryTime.Sub(now); remaining > 0 {
		view.Remaining = remaining
	}
	return &view, nil
}

func (s *Service) resolvePartner(ctx context.Context, order *entities.Order) (*entities.DeliveryPartner, error) {
	if order.DeliveryPartnerID != nil {
		partner, err := s.partners.GetByID(ctx, *order.DeliveryPartnerID)
		if err != nil {
			return nil, fmt.Errorf("get delivery partner: %w", err)
		}
		return partner, nil
	}

	if order.Status.Terminal() {
		return nil, nil
	}

	partner, err := s.assigner.EnsureAssigned(ctx, order.ID)
	if err != nil {
		if errors.Is(err, assignment.ErrNoPartnerAvailable) {
			s.log.Debug("no delivery partner available yet",
				logger.NewField("order_id", order.ID.String()),
			)
			return nil, nil
		}

		s.log.Warn("partner assignment failed during tracking",
			logger.NewField("order_id", order.ID.String()),
			logger.NewField("error", err.Error()),
		)
		return nil, nil
	}
	return partner, nil
}
