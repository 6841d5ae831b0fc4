package partner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
	"github.com/piyushjain76296/OnTrackEats/internal/service/assignment"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryPartner, error) {
	query := `
		SELECT id, name, phone, is_available
		FROM delivery_partners
		WHERE id = $1
	`

	var partnerDB PartnerDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&partnerDB.ID,
		&partnerDB.Name,
		&partnerDB.Phone,
		&partnerDB.IsAvailable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("unexpected partner repository getbyid error: %w", err)
	}

	return ToDomain(&partnerDB), nil
}

func (r *Repository) ListAvailable(ctx context.Context) ([]entities.DeliveryPartner, error) {
	query := `
		SELECT id, name, phone, is_available
		FROM delivery_partners
		WHERE is_available
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected partner repository listavailable error: %w", err)
	}
	defer rows.Close()

	partners := make([]PartnerDB, 0, 8)
	for rows.Next() {
		var partnerDB PartnerDB
		err := rows.Scan(
			&partnerDB.ID,
			&partnerDB.Name,
			&partnerDB.Phone,
			&partnerDB.IsAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected partner repository listavailable error: %w", err)
		}
		partners = append(partners, partnerDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected partner repository listavailable error: %w", err)
	}

	return ToDomainList(partners), nil
}
