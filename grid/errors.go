package grid

import "errors"

var (
	// ErrOutOfRange indicates Position arithmetic left the non-negative quadrant.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrNonCardinal indicates a turn was requested on a zero or diagonal vector.
	ErrNonCardinal = errors.New("grid: vector is not cardinal")
)
