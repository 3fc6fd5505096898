package macro

import "errors"

// Sentinel errors for the macro queue.
var (
	// ErrQueueNotRunning is returned when Enqueue is called on a stopped queue.
	ErrQueueNotRunning = errors.New("macro queue is not running")

	// ErrQueueAlreadyRunning is returned when Start is called on a running queue.
	ErrQueueAlreadyRunning = errors.New("macro queue is already running")

	// ErrQueueFull is returned when the queue buffer cannot accept more macros.
	ErrQueueFull = errors.New("macro queue is full")

	// ErrNilMacro is returned when a nil macro is enqueued.
	ErrNilMacro = errors.New("macro cannot be nil")

	// ErrNilSynthesizer is returned when a queue is created without a synthesizer.
	ErrNilSynthesizer = errors.New("synthesizer cannot be nil")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("shutdown timeout exceeded")
)

// PlaybackError wraps a synthesizer failure with the step that caused it.
type PlaybackError struct {
	// Step is the primitive that failed.
	Step Step

	// Err is the underlying synthesizer error.
	Err error
}

// Error implements the error interface.
func (e *PlaybackError) Error() string {
	return "playback failed at " + e.Step.Op.String() + " " + e.Step.Key.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *PlaybackError) Unwrap() error {
	return e.Err
}
