package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

var ErrInvalidRestaurantID = errors.New("invalid restaurant id")

type Service struct {
	menus MenuRepository
}

func New(menus MenuRepository) *Service {
	return &Service{menus: menus}
}

// RestaurantMenu lists what the restaurant can serve right now; items marked
// unavailable are filtered out.
func (s *Service) RestaurantMenu(ctx context.Context, restaurantID uuid.UUID) ([]entities.MenuItem, error) {
	if restaurantID == uuid.Nil {
		return nil, ErrInvalidRestaurantID
	}

	items, err := s.menus.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}

	available := make([]entities.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}
	return available, nil
}
