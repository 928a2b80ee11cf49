package ordering

import "errors"

var (
	// ErrNotFound is returned when an item id does not belong to the owner's list.
	ErrNotFound = errors.New("item not found")
	// ErrTransaction is returned when the atomic bulk write of a normalization did not commit.
	ErrTransaction = errors.New("normalization transaction failed")
	// ErrInvalidPosition is returned for keys that cannot be ordered (NaN or infinite).
	ErrInvalidPosition = errors.New("invalid position")
)
