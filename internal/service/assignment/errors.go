package assignment

import "errors"

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrNoPartnerAvailable = errors.New("no delivery partner available")
	ErrPartnerNotFound    = errors.New("delivery partner not found")
)
