package idgen

import "errors"

var (
	// ErrInvalidLength is returned when a numeric ID is requested with a length
	// that leaves nothing to parse, or more digits than an int64 can hold.
	ErrInvalidLength = errors.New("invalid id length")

	// ErrEntropyUnavailable wraps failures of the secure random source.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrInvalidKind is returned by ParseKind for names other than
	// "string" and "number".
	ErrInvalidKind = errors.New("invalid id type")
)
