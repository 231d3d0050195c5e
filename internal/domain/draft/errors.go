package draft

import (
	"errors"
)

var (
	// ErrDraftNotFound is returned when a draft is not found or has expired
	ErrDraftNotFound = errors.New("draft not found")

	// ErrItemIndexOutOfRange is returned when an item index does not exist
	ErrItemIndexOutOfRange = errors.New("line item index out of range")
)

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrDraftNotFound)
}
