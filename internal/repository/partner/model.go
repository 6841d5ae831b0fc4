package partner

import "github.com/google/uuid"

type PartnerDB struct {
	ID          uuid.UUID
	Name        string
	Phone       string
	IsAvailable bool
}
