package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core workflows. Controllers match these with
// errors.Is to pick the HTTP status.
var (
	ErrValidation    = errors.New("validation failed")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrStaleCartItem = errors.New("cart item no longer available")
	ErrCartConflict  = errors.New("cart has items from another restaurant")
	ErrNotFound      = errors.New("not found")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrForbidden     = errors.New("forbidden")
)

// Validationf wraps ErrValidation with a field-level message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
