package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
	"github.com/piyushjain76296/OnTrackEats/internal/repository"
)

type PaymentDB struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	Amount         float64
	Method         string
	Status         string
	TransactionRef string
	CreatedAt      time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, record entities.PaymentRecord) (*entities.PaymentRecord, error) {
	query := `
		INSERT INTO payments (order_id, amount, method, status, transaction_ref)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, order_id, amount, method, status, transaction_ref, created_at
	`

	var paymentDB PaymentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		record.OrderID,
		record.Amount,
		record.Method.String(),
		record.Status.String(),
		record.TransactionRef,
	).Scan(
		&paymentDB.ID,
		&paymentDB.OrderID,
		&paymentDB.Amount,
		&paymentDB.Method,
		&paymentDB.Status,
		&paymentDB.TransactionRef,
		&paymentDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("payment repository create: unknown order: %w", err)
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return &entities.PaymentRecord{
		ID:             paymentDB.ID,
		OrderID:        paymentDB.OrderID,
		Amount:         paymentDB.Amount,
		Method:         entities.PaymentMethodType(paymentDB.Method),
		Status:         entities.PaymentStatusType(paymentDB.Status),
		TransactionRef: paymentDB.TransactionRef,
		CreatedAt:      paymentDB.CreatedAt,
	}, nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.PaymentRecord, error) {
	query := `
		SELECT id, order_id, amount, method, status, transaction_ref, created_at
		FROM payments
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}
	defer rows.Close()

	records := make([]entities.PaymentRecord, 0, 2)
	for rows.Next() {
		var paymentDB PaymentDB
		err := rows.Scan(
			&paymentDB.ID,
			&paymentDB.OrderID,
			&paymentDB.Amount,
			&paymentDB.Method,
			&paymentDB.Status,
			&paymentDB.TransactionRef,
			&paymentDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
		}

		records = append(records, entities.PaymentRecord{
			ID:             paymentDB.ID,
			OrderID:        paymentDB.OrderID,
			Amount:         paymentDB.Amount,
			Method:         entities.PaymentMethodType(paymentDB.Method),
			Status:         entities.PaymentStatusType(paymentDB.Status),
			TransactionRef: paymentDB.TransactionRef,
			CreatedAt:      paymentDB.CreatedAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}
	return records, nil
}
