package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

type MenuItemDB struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Description  string
	Price        float64
	Available    bool
	CreatedAt    time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]entities.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, name, description, price, available, created_at
		FROM menus
		WHERE restaurant_id = $1
		ORDER BY name
	`

	rows, err := r.querier.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("unexpected menu repository list error: %w", err)
	}
	defer rows.Close()

	items := make([]entities.MenuItem, 0, 16)
	for rows.Next() {
		var itemDB MenuItemDB
		err := rows.Scan(
			&itemDB.ID,
			&itemDB.RestaurantID,
			&itemDB.Name,
			&itemDB.Description,
			&itemDB.Price,
			&itemDB.Available,
			&itemDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected menu repository list error: %w", err)
		}

		items = append(items, entities.MenuItem{
			ID:           itemDB.ID,
			RestaurantID: itemDB.RestaurantID,
			Name:         itemDB.Name,
			Description:  itemDB.Description,
			Price:        itemDB.Price,
			Available:    itemDB.Available,
			CreatedAt:    itemDB.CreatedAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected menu repository list error: %w", err)
	}
	return items, nil
}
