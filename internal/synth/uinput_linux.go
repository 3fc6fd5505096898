//go:build linux

package synth

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/dshills/cyclekeys/internal/input/key"
)

// uinput protocol constants (linux/uinput.h, linux/input-event-codes.h).
const (
	uinputPath = "/dev/uinput"

	evSyn = 0x00
	evKey = 0x01

	synReport = 0

	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502

	busUSB = 0x03

	maxKeyCode = 255
)

// Uinput injects key events through a virtual kernel input device.
type Uinput struct {
	mu     sync.Mutex
	fd     int
	closed bool
}

// NewUinput creates and registers a virtual keyboard device.
// Requires write access to /dev/uinput.
func NewUinput() (*Uinput, error) {
	fd, err := unix.Open(uinputPath, unix.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", uinputPath, err)
	}

	if err := unix.IoctlSetInt(fd, uiSetEvBit, evKey); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("enabling key events: %w", err)
	}
	if err := unix.IoctlSetInt(fd, uiSetEvBit, evSyn); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("enabling syn events: %w", err)
	}
	for code := 1; code <= maxKeyCode; code++ {
		if err := unix.IoctlSetInt(fd, uiSetKeyBit, code); err != nil {
			unix.Close(fd)
			return nil, fmt.Errorf("enabling key code %d: %w", code, err)
		}
	}

	setup, err := deviceSetup("cyclekeys virtual keyboard")
	if err != nil {
		unix.Close(fd)
		return nil, err
	}
	if _, err := unix.Write(fd, setup); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("writing device setup: %w", err)
	}

	if err := unix.IoctlSetInt(fd, uiDevCreate, 0); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("creating uinput device: %w", err)
	}

	return &Uinput{fd: fd}, nil
}

// Press injects a key press.
func (u *Uinput) Press(id key.ID) error {
	return u.emitKey(id, 1)
}

// Release injects a key release.
func (u *Uinput) Release(id key.ID) error {
	return u.emitKey(id, 0)
}

// Close destroys the virtual device.
func (u *Uinput) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return nil
	}
	u.closed = true

	if err := unix.IoctlSetInt(u.fd, uiDevDestroy, 0); err != nil {
		unix.Close(u.fd)
		return fmt.Errorf("destroying uinput device: %w", err)
	}
	return unix.Close(u.fd)
}

func (u *Uinput) emitKey(id key.ID, value int32) error {
	code, ok := evdevCode(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, id)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return ErrDeviceClosed
	}

	if err := u.writeEvent(evKey, code, value); err != nil {
		return err
	}
	return u.writeEvent(evSyn, synReport, 0)
}

// writeEvent writes a single input_event struct to the device.
func (u *Uinput) writeEvent(typ, code uint16, value int32) error {
	now := time.Now()

	var buf bytes.Buffer
	// struct input_event: timeval (sec, usec), type, code, value.
	binary.Write(&buf, binary.LittleEndian, int64(now.Unix()))
	binary.Write(&buf, binary.LittleEndian, int64(now.Nanosecond()/1000))
	binary.Write(&buf, binary.LittleEndian, typ)
	binary.Write(&buf, binary.LittleEndian, code)
	binary.Write(&buf, binary.LittleEndian, value)

	if _, err := unix.Write(u.fd, buf.Bytes()); err != nil {
		return fmt.Errorf("writing input event: %w", err)
	}
	return nil
}

// deviceSetup builds the legacy uinput_user_dev registration blob.
func deviceSetup(name string) ([]byte, error) {
	if len(name) >= 80 {
		return nil, fmt.Errorf("device name too long: %q", name)
	}

	var buf bytes.Buffer
	nameField := make([]byte, 80)
	copy(nameField, name)
	buf.Write(nameField)

	// struct input_id: bustype, vendor, product, version.
	binary.Write(&buf, binary.LittleEndian, uint16(busUSB))
	binary.Write(&buf, binary.LittleEndian, uint16(0x1d50))
	binary.Write(&buf, binary.LittleEndian, uint16(0x6042))
	binary.Write(&buf, binary.LittleEndian, uint16(1))

	// ff_effects_max plus the four absolute-axis tables.
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	buf.Write(make([]byte, 4*64*4))

	return buf.Bytes(), nil
}

// extendedEvdev maps extended scan codes to evdev key codes. Standard
// scan codes match the evdev numbering directly.
var extendedEvdev = map[uint16]uint16{
	28: 96,  // KPEnter
	29: 97,  // RightControl
	53: 98,  // KPDivide
	55: 99,  // PrintScreen (SysRq)
	56: 100, // RightAlt
	71: 102, // Home
	72: 103, // Up
	73: 104, // PageUp
	75: 105, // Left
	77: 106, // Right
	79: 107, // End
	80: 108, // Down
	81: 109, // PageDown
	82: 110, // Insert
	83: 111, // Delete
	91: 125, // LeftSuper
	92: 126, // RightSuper
	93: 127, // Menu
}

// evdevCode maps a key identity to its evdev key code.
func evdevCode(id key.ID) (uint16, bool) {
	if !id.Extended {
		if id.Code == 0 || id.Code > maxKeyCode {
			return 0, false
		}
		return id.Code, true
	}
	code, ok := extendedEvdev[id.Code]
	return code, ok
}
