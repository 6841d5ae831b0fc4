package entities

import (
	"time"

	"github.com/google/uuid"
)

// PaymentRecord logs the payment intent captured at checkout. Payments are
// recorded, not processed.
type PaymentRecord struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	Amount         float64
	Method         PaymentMethodType
	Status         PaymentStatusType
	TransactionRef string
	CreatedAt      time.Time
}
