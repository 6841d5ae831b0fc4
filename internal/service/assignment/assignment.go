package assignment

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

const sweepBatchSize = 100

// Service hands orders to delivery partners exactly once. The partner slot on
// an order is written with a compare-and-set against the empty slot, so under
// concurrent callers one writer wins and everyone else observes the winner.
type Service struct {
	orders   OrderRepository
	partners PartnerRepository

	// pick returns a uniform index in [0, n)
	pick func(n int) int
}

func New(orders OrderRepository, partners PartnerRepository) *Service {
	return &Service{
		orders:   orders,
		partners: partners,
		pick:     rand.IntN,
	}
}

// EnsureAssigned returns the partner assigned to the order, assigning one
// first if the order has none. Safe to call repeatedly and concurrently: once
// a partner is recorded every subsequent call returns that same partner.
func (s *Service) EnsureAssigned(ctx context.Context, orderID uuid.UUID) (*entities.DeliveryPartner, error) {
	if orderID == uuid.Nil {
		return nil, ErrInvalidOrderID
	}

	current, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if current.DeliveryPartnerID != nil {
		return s.assignedPartner(ctx, *current.DeliveryPartnerID)
	}

	available, err := s.partners.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available partners: %w", err)
	}
	if len(available) == 0 {
		return nil, ErrNoPartnerAvailable
	}

	candidate := available[s.pick(len(available))]

	won, err := s.orders.AssignPartner(ctx, orderID, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("assign partner: %w", err)
	}

	if won {
		AssignmentsWonTotal.Inc()
		return &candidate, nil
	}

	// lost the race: somebody else filled the slot, report their partner
	AssignmentRacesLostTotal.Inc()

	settled, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order after lost race: %w", err)
	}
	if settled.DeliveryPartnerID == nil {
		return nil, fmt.Errorf("order %s: assignment race lost but no partner recorded", orderID)
	}

	return s.assignedPartner(ctx, *settled.DeliveryPartnerID)
}

// SweepUnassigned assigns partners to orders that are still waiting for one
// and reports how many it assigned. It stops early once no partner is
// available since the remaining orders would fail the same way.
func (s *Service) SweepUnassigned(ctx context.Context) (int64, error) {
	ids, err := s.orders.ListUnassignedIDs(ctx, sweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list unassigned orders: %w", err)
	}

	var assigned int64
	var failures error
	for _, id := range ids {
		if _, err := s.EnsureAssigned(ctx, id); err != nil {
			if errors.Is(err, ErrNoPartnerAvailable) {
				return assigned, failures
			}
			failures = errors.Join(failures, fmt.Errorf("order %s: %w", id, err))
			continue
		}
		assigned++
	}

	return assigned, failures
}

func (s *Service) assignedPartner(ctx context.Context, partnerID uuid.UUID) (*entities.DeliveryPartner, error) {
	partner, err := s.partners.GetByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("get assigned partner: %w", err)
	}
	return partner, nil
}
