//go:build linux

package evdev

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"github.com/dshills/cyclekeys/internal/input"
	"github.com/dshills/cyclekeys/internal/input/key"
)

// Linux input subsystem constants.
const (
	evKey = 0x01

	// EVIOCGRAB takes exclusive hold of the device.
	eviocGrab = 0x40044590

	// eventSize is sizeof(struct input_event) on 64-bit kernels.
	eventSize = 24

	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

// deviceNamespace seeds deterministic device GUIDs so the same device
// path resolves to the same GUID across runs.
var deviceNamespace = uuid.MustParse("7f8b4a52-0e64-4c3a-9b1d-2d9f6e8a3c01")

// deviceGUID derives the stable GUID for a device node path.
func deviceGUID(path string) uuid.UUID {
	return uuid.NewSHA1(deviceNamespace, []byte(path))
}

// Reader streams keyboard transitions from one evdev device node.
type Reader struct {
	f       *os.File
	path    string
	device  uuid.UUID
	grabbed bool
}

// Open opens a device node such as /dev/input/event3 for reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device: %w", err)
	}
	return &Reader{
		f:      f,
		path:   path,
		device: deviceGUID(path),
	}, nil
}

// Device returns the GUID profiles use to address this device.
func (r *Reader) Device() uuid.UUID {
	return r.device
}

// Path returns the device node path.
func (r *Reader) Path() string {
	return r.path
}

// Grab takes exclusive hold of the device so its events are not
// delivered to other consumers while the reader runs.
func (r *Reader) Grab() error {
	if err := unix.IoctlSetInt(int(r.f.Fd()), eviocGrab, 1); err != nil {
		return fmt.Errorf("grab %s: %w", r.path, err)
	}
	r.grabbed = true
	return nil
}

// Close releases the device. A grabbed device is ungrabbed first.
func (r *Reader) Close() error {
	if r.grabbed {
		_ = unix.IoctlSetInt(int(r.f.Fd()), eviocGrab, 0)
		r.grabbed = false
	}
	return r.f.Close()
}

// Run reads transitions and sends them on events until the context is
// cancelled or the device read fails. Autorepeat transitions and
// non-key events are dropped.
func (r *Reader) Run(ctx context.Context, events chan<- input.Event) error {
	buf := make([]byte, eventSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := r.f.Read(buf); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read %s: %w", r.path, err)
		}

		typ := binary.LittleEndian.Uint16(buf[16:18])
		code := binary.LittleEndian.Uint16(buf[18:20])
		value := int32(binary.LittleEndian.Uint32(buf[20:24]))

		if typ != evKey || value == valueRepeat {
			continue
		}
		id, ok := keyFromEvdev(code)
		if !ok {
			continue
		}

		ev := input.NewEvent(r.device, input.TypeKeyboard, id.EventCode(), value == valuePress)
		select {
		case events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// extendedKeys maps evdev key codes back to extended scan codes.
// Codes at or below 88 match the standard scan code set directly.
var extendedKeys = map[uint16]uint16{
	96:  28, // KPEnter
	97:  29, // RightControl
	98:  53, // KPDivide
	99:  55, // PrintScreen
	100: 56, // RightAlt
	102: 71, // Home
	103: 72, // Up
	104: 73, // PageUp
	105: 75, // Left
	106: 77, // Right
	107: 79, // End
	108: 80, // Down
	109: 81, // PageDown
	110: 82, // Insert
	111: 83, // Delete
	125: 91, // LeftSuper
	126: 92, // RightSuper
	127: 93, // Menu
}

// maxStandardCode is the highest evdev code shared with the standard
// scan code set.
const maxStandardCode = 88

// keyFromEvdev maps an evdev key code to a key identity.
func keyFromEvdev(code uint16) (key.ID, bool) {
	if code > 0 && code <= maxStandardCode {
		return key.ID{Code: code}, true
	}
	if sc, ok := extendedKeys[code]; ok {
		return key.ID{Code: sc, Extended: true}, true
	}
	return key.ID{}, false
}
