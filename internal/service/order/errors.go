package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStatusConflict is returned by the repository when the conditional
	// status update matched no row because the stored status moved on.
	ErrStatusConflict = errors.New("order status changed concurrently")
)
