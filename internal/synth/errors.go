package synth

import "errors"

// Sentinel errors for synthesizer backends.
var (
	// ErrUnsupported is returned when no injection backend exists for the
	// current platform.
	ErrUnsupported = errors.New("key injection is not supported on this platform")

	// ErrDeviceClosed is returned when primitives are sent to a closed device.
	ErrDeviceClosed = errors.New("synthesizer device is closed")

	// ErrUnknownKey is returned when a scan code cannot be mapped to an
	// output key code.
	ErrUnknownKey = errors.New("scan code has no output mapping")
)
