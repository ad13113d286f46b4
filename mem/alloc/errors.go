package alloc

import "errors"

var (
	// ErrInvalidCapacity indicates a Space was constructed with a non-positive capacity.
	ErrInvalidCapacity = errors.New("alloc: capacity must be positive")

	// ErrInvalidRequest indicates Alloc was called with a non-positive length.
	ErrInvalidRequest = errors.New("alloc: requested length must be positive")

	// ErrNoSpace indicates that no free block large enough was found.
	// The caller may retry after Free or Compact.
	ErrNoSpace = errors.New("alloc: no free block large enough")

	// ErrUnknownAddress indicates Free was called with an address that is not
	// currently allocated. A double free reports the same error: identity is
	// address-based and a freed address has already left the allocated registry.
	ErrUnknownAddress = errors.New("alloc: address not currently allocated")
)
