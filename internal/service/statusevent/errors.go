package statusevent

import "errors"

var (
	ErrMissingEventFields = errors.New("order id and status are required")
	ErrUndefinedStatus    = errors.New("undefined order status")
)
