package evdev

import "errors"

// ErrUnsupported indicates evdev devices are not available on this
// platform.
var ErrUnsupported = errors.New("evdev: not supported on this platform")
