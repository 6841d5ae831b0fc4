package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
	orderservice "github.com/piyushjain76296/OnTrackEats/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, user_id, restaurant_id, status, total, items,
		train_no, coach, seat, station_code, train_eta,
		delivery_location, special_instructions,
		payment_method, payment_status,
		delivery_partner_id, delivery_time, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, order entities.Order) (*entities.Order, error) {
	items, err := itemsFromDomain(order.Items)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	query := `
		INSERT INTO orders (
			user_id, restaurant_id, status, total, items,
			train_no, coach, seat, station_code, train_eta,
			delivery_location, special_instructions,
			payment_method, payment_status, delivery_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		order.UserID,
		order.RestaurantID,
		order.Status.String(),
		order.Total,
		items,
		order.TrainDetails.TrainNo,
		order.TrainDetails.Coach,
		order.TrainDetails.Seat,
		order.TrainDetails.StationCode,
		order.TrainDetails.ETA,
		order.DeliveryLocation,
		order.SpecialInstructions,
		order.PaymentMethod.String(),
		order.PaymentStatus.String(),
		order.DeliveryTime,
	)

	created, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}
	return order, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listbyuser error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listbyuser error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0, 8)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository listbyuser error: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository listbyuser error: %w", err)
	}
	return orders, nil
}

// UpdateStatus flips the status only while the stored status still equals
// from. Zero matched rows on an existing order means a concurrent writer got
// there first. Reaching delivered stamps delivery_time if it is still empty.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.OrderStatusType) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = $3,
			delivery_time = CASE
				WHEN $3 = 'delivered' AND delivery_time IS NULL THEN now()
				ELSE delivery_time
			END
		WHERE id = $1 AND status = $2
		RETURNING ` + orderColumns

	order, err := scanOrder(r.querier.QueryRow(ctx, query, id, from.String(), to.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrStatusConflict
		}
		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}
	return order, nil
}

// AssignPartner fills the partner slot only while it is empty. The reported
// bool is the compare-and-set outcome.
func (r *Repository) AssignPartner(ctx context.Context, orderID, partnerID uuid.UUID) (bool, error) {
	query := `
		UPDATE orders
		SET delivery_partner_id = $2
		WHERE id = $1 AND delivery_partner_id IS NULL
	`

	result, err := r.querier.Exec(ctx, query, orderID, partnerID)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository assignpartner error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) ListUnassignedIDs(ctx context.Context, limit uint64) ([]uuid.UUID, error) {
	builder := qb.
		Select("id").
		From("orders").
		Where(sq.Eq{"delivery_partner_id": nil}).
		Where(sq.Eq{"status": []string{
			entities.OrderConfirmed.String(),
			entities.OrderPreparing.String(),
			entities.OrderOutForDelivery.String(),
		}}).
		OrderBy("created_at ASC").
		Limit(limit)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listunassigned error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listunassigned error: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0, 8)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected order repository listunassigned error: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository listunassigned error: %w", err)
	}
	return ids, nil
}

func scanOrder(row pgx.Row) (*entities.Order, error) {
	var orderDB OrderDB
	err := row.Scan(
		&orderDB.ID,
		&orderDB.UserID,
		&orderDB.RestaurantID,
		&orderDB.Status,
		&orderDB.Total,
		&orderDB.Items,
		&orderDB.TrainNo,
		&orderDB.Coach,
		&orderDB.Seat,
		&orderDB.StationCode,
		&orderDB.TrainETA,
		&orderDB.DeliveryLocation,
		&orderDB.SpecialInstructions,
		&orderDB.PaymentMethod,
		&orderDB.PaymentStatus,
		&orderDB.DeliveryPartnerID,
		&orderDB.DeliveryTime,
		&orderDB.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ToDomain(&orderDB)
}
