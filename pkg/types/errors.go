package types

import "errors"

// Validation errors. These are recoverable by the owning screen and are
// surfaced inline; they never unwind the navigator.
var (
	ErrDuplicateID     = errors.New("id already exists")
	ErrUnknownLocation = errors.New("location id does not exist")
	ErrNotFound        = errors.New("entity not found")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrBadID           = errors.New("id must be an integer")
)

// Store lifecycle errors.
var (
	ErrAlreadyAttached = errors.New("store already attached")
	ErrDetached        = errors.New("store not attached")
)

// IsValidation reports whether err belongs to the recoverable class of user
// input errors. Anything else coming out of a mutation is treated as an
// infrastructure fault and escalates to the error screen.
func IsValidation(err error) bool {
	return errors.Is(err, ErrDuplicateID) ||
		errors.Is(err, ErrUnknownLocation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrBadID)
}
