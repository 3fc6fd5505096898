//go:build !linux

package synth

import "github.com/dshills/cyclekeys/internal/input/key"

// Uinput is unavailable off Linux; every method reports ErrUnsupported.
type Uinput struct{}

// NewUinput always fails on this platform.
func NewUinput() (*Uinput, error) {
	return nil, ErrUnsupported
}

// Press implements macro.Synthesizer.
func (u *Uinput) Press(key.ID) error { return ErrUnsupported }

// Release implements macro.Synthesizer.
func (u *Uinput) Release(key.ID) error { return ErrUnsupported }

// Close is a no-op on this platform.
func (u *Uinput) Close() error { return nil }
