package order

import (
	"time"

	"github.com/google/uuid"
)

type OrderDB struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	RestaurantID        uuid.UUID
	Status              string
	Total               float64
	Items               []byte
	TrainNo             string
	Coach               string
	Seat                string
	StationCode         string
	TrainETA            *time.Time
	DeliveryLocation    string
	SpecialInstructions string
	PaymentMethod       string
	PaymentStatus       string
	DeliveryPartnerID   *uuid.UUID
	DeliveryTime        *time.Time
	CreatedAt           time.Time
}

// lineItemDB is the shape of one element of the items jsonb column.
type lineItemDB struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
