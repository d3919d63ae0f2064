package buffer

import "errors"

// Errors returned by Buffer operations. Callers match them with errors.Is;
// operations may wrap them with the offending index or capacity.
var (
	// ErrCapacityExceeded is returned when a requested or implied capacity
	// is above the configured maximum, including an append to a buffer that
	// is already full at the maximum.
	ErrCapacityExceeded = errors.New("buffer: capacity exceeded")

	// ErrNegativeCapacity is returned by Resize for a negative capacity.
	ErrNegativeCapacity = errors.New("buffer: negative capacity")

	// ErrIndexOutOfRange is returned for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("buffer: index out of range")

	// ErrEmptyBuffer is returned by PopBack on a buffer with no elements.
	ErrEmptyBuffer = errors.New("buffer: pop from empty buffer")

	// ErrInvalidRange is returned by FromRange when first is after last.
	ErrInvalidRange = errors.New("buffer: invalid range order")

	// ErrInvalidLimits is returned when Limits violate 1 <= Min <= Max or Step < 1.
	ErrInvalidLimits = errors.New("buffer: invalid limits")

	// ErrNilSource is returned by CopyFrom for a nil source buffer.
	ErrNilSource = errors.New("buffer: nil source")

	// ErrReleased is returned by any operation on a buffer after Release.
	ErrReleased = errors.New("buffer: use of released buffer")
)
