package errors

import (
	"errors"
)

var (
	ErrProductNotFound        = errors.New("Product not found")
	ErrDeliveryOptionNotFound = errors.New("Delivery option not found")
	ErrCartItemNotFound       = errors.New("Cart item not found")
	ErrOrderNotFound          = errors.New("Order not found")
	ErrRouteNotFound          = errors.New("Not found")
	ErrMethodNotAllowed       = errors.New("Method not allowed")

	ErrProductAlreadyExist        = errors.New("product already exist")
	ErrDeliveryOptionAlreadyExist = errors.New("delivery option already exist")
	ErrInvalidRequest             = errors.New("invalid request")
	ErrEmptyOrder                 = errors.New("order must contain at least one product")

	ErrInternal = errors.New("Something went wrong!")
)

// IsNotFound reports whether err is one of the lookup misses above.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrDeliveryOptionNotFound) ||
		errors.Is(err, ErrCartItemNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrRouteNotFound)
}

// NotFoundCause returns the not-found sentinel wrapped in err, so that only its
// message reaches the client.
func NotFoundCause(err error) error {
	for _, target := range []error{
		ErrProductNotFound,
		ErrDeliveryOptionNotFound,
		ErrCartItemNotFound,
		ErrOrderNotFound,
		ErrRouteNotFound,
	} {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}
