package dispatcher

import "errors"

// Sentinel errors for dispatcher construction.
var (
	// ErrNilQueue is returned when no macro queue is provided.
	ErrNilQueue = errors.New("macro queue cannot be nil")

	// ErrNilRelease is returned when no auto-release registry is provided.
	ErrNilRelease = errors.New("auto-release registry cannot be nil")
)
