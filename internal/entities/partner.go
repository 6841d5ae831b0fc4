package entities

import "github.com/google/uuid"

// DeliveryPartner availability is advisory for selection only: a partner may
// carry several open orders at once, the engine never reserves one
// exclusively.
type DeliveryPartner struct {
	ID          uuid.UUID
	Name        string
	Phone       string
	IsAvailable bool
}
