package freelist

import "errors"

var (
	// ErrInvalidCapacity is the panic value of New for a negative capacity.
	ErrInvalidCapacity = errors.New("freelist: capacity must not be negative")

	// ErrReleased is the panic value for operations on a released list.
	ErrReleased = errors.New("freelist: use after Release()")

	// ErrNotAllocated indicates access to a key that does not name a live value.
	// Only strict builds detect this.
	ErrNotAllocated = errors.New("freelist: key is not allocated")
)
