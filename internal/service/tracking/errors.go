package tracking

import "errors"

var ErrInvalidOrderID = errors.New("invalid order id")
