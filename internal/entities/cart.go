package entities

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a cart entry tagged with the restaurant it belongs to. Price is
// the snapshot taken when the item was added.
type CartItem struct {
	ItemID         uuid.UUID
	RestaurantID   uuid.UUID
	RestaurantName string
	StationCode    string
	Name           string
	Quantity       int
	Price          float64
}

// Cart lives only between "add to cart" and checkout; it is never persisted.
type Cart struct {
	Items []CartItem
}

func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}

// OrderDraft is the ephemeral per-restaurant hand-off between checkout and
// order submission.
type OrderDraft struct {
	RestaurantID     uuid.UUID
	RestaurantName   string
	StationCode      string
	Total            float64
	DeliveryLocation string
	ETA              time.Time
	Items            []LineItem
}

// DeliveryDetails is what the traveler fills in on the payment step.
type DeliveryDetails struct {
	TrainNo             string
	Coach               string
	Seat                string
	StationCode         string
	DeliveryLocation    string
	SpecialInstructions string
	PaymentMethod       PaymentMethodType
}
