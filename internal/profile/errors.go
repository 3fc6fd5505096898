package profile

import "errors"

// Sentinel errors for profile loading.
var (
	// ErrNotProfile is returned when the document root is not a profile element.
	ErrNotProfile = errors.New("document root is not a profile")

	// ErrNilRegistry is returned when a profile is parsed without an action registry.
	ErrNilRegistry = errors.New("action registry cannot be nil")

	// ErrWatcherClosed is returned when a closed watcher is used.
	ErrWatcherClosed = errors.New("profile watcher is closed")
)
