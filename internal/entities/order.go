package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	RestaurantID        uuid.UUID
	Status              OrderStatusType
	Total               float64
	Items               []LineItem
	TrainDetails        TrainDetails
	DeliveryLocation    string
	SpecialInstructions string
	PaymentMethod       PaymentMethodType
	PaymentStatus       PaymentStatusType
	DeliveryPartnerID   *uuid.UUID
	DeliveryTime        *time.Time
	CreatedAt           time.Time
}

// LineItem is a snapshot taken when the item was added to the cart; it never
// tracks later catalog price changes.
type LineItem struct {
	Name     string
	Quantity int
	Price    float64
}

type TrainDetails struct {
	TrainNo     string
	Coach       string
	Seat        string
	StationCode string
	ETA         *time.Time
}

type OrderStatusType string

const (
	OrderPending        OrderStatusType = "pending"
	OrderConfirmed      OrderStatusType = "confirmed"
	OrderPreparing      OrderStatusType = "preparing"
	OrderOutForDelivery OrderStatusType = "out_for_delivery"
	OrderDelivered      OrderStatusType = "delivered"
	OrderCancelled      OrderStatusType = "cancelled"
)

// OrderPlaced is accepted from the payment flow as an alias of pending.
const OrderPlaced OrderStatusType = "placed"

func (s OrderStatusType) String() string {
	return string(s)
}

// Rank maps a status to its position 1..4 on the delivery pipeline as shown
// by the step indicator. Cancelled has no rank and reports ok=false.
func (s OrderStatusType) Rank() (rank int, ok bool) {
	switch s {
	case OrderPending, OrderPlaced, OrderConfirmed:
		return 1, true
	case OrderPreparing:
		return 2, true
	case OrderOutForDelivery:
		return 3, true
	case OrderDelivered:
		return 4, true
	default:
		return 0, false
	}
}

// Next returns the immediate successor in the pipeline. Terminal statuses
// have no successor.
func (s OrderStatusType) Next() (OrderStatusType, bool) {
	switch s {
	case OrderPending, OrderPlaced:
		return OrderConfirmed, true
	case OrderConfirmed:
		return OrderPreparing, true
	case OrderPreparing:
		return OrderOutForDelivery, true
	case OrderOutForDelivery:
		return OrderDelivered, true
	default:
		return "", false
	}
}

func (s OrderStatusType) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type PaymentMethodType string

const (
	PaymentCOD        PaymentMethodType = "cod"
	PaymentUPI        PaymentMethodType = "upi"
	PaymentCard       PaymentMethodType = "card"
	PaymentNetbanking PaymentMethodType = "netbanking"
)

func (m PaymentMethodType) String() string {
	return string(m)
}

type PaymentStatusType string

const (
	PaymentUnpaid   PaymentStatusType = "unpaid"
	PaymentPaid     PaymentStatusType = "paid"
	PaymentFailed   PaymentStatusType = "failed"
	PaymentRefunded PaymentStatusType = "refunded"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

// OrderModify carries the optional fields of a partial order update.
type OrderModify struct {
	ID                *uuid.UUID
	Status            *OrderStatusType
	PaymentStatus     *PaymentStatusType
	DeliveryPartnerID *uuid.UUID
	DeliveryTime      *time.Time
}
