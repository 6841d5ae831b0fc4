package checkout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidCartItem      = errors.New("invalid cart item")
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrInvalidTrainDetails  = errors.New("invalid train details")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// PartialFailureError reports a checkout that stopped midway: the orders
// created before the failing restaurant group remain placed and must not be
// rolled back.
type PartialFailureError struct {
	CreatedOrderIDs    []uuid.UUID
	FailedRestaurantID uuid.UUID
	Err                error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf(
		"checkout stopped at restaurant %s after placing %d order(s): %v",
		e.FailedRestaurantID, len(e.CreatedOrderIDs), e.Err,
	)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
