package ordering

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when a key, name or uid matches no catalog item
	ErrItemNotFound = errors.New("item not found in catalog")
	// ErrBundleNotFound is returned for an out-of-range bundle index
	ErrBundleNotFound = errors.New("bundle not found")
	// ErrEmptyCart rejects an export with nothing ordered
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingDestination rejects an export without a destination warehouse or truck
	ErrMissingDestination = errors.New("destination warehouse is required")
	// ErrExportDeclined means the user chose not to continue past a confirmation
	ErrExportDeclined = errors.New("export declined")
)

// FieldError ties a validation failure to the input field the user must correct
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
