//go:build !linux

package evdev

import (
	"context"

	"github.com/google/uuid"

	"github.com/dshills/cyclekeys/internal/input"
)

// Reader is unavailable off Linux.
type Reader struct{}

// Open always fails on this platform.
func Open(string) (*Reader, error) {
	return nil, ErrUnsupported
}

func (r *Reader) Device() uuid.UUID { return uuid.Nil }

func (r *Reader) Path() string { return "" }

func (r *Reader) Grab() error { return ErrUnsupported }

func (r *Reader) Close() error { return nil }

func (r *Reader) Run(context.Context, chan<- input.Event) error {
	return ErrUnsupported
}
