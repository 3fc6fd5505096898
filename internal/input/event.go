package input

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is a single transition of a physical input.
type Event struct {
	// Device is the GUID of the originating device.
	Device uuid.UUID

	// Type is the kind of input that transitioned.
	Type Type

	// Code is the device-local index of the input (button number, axis
	// number, hat number, or keyboard scan code).
	Code int

	// Pressed is true when the input transitioned to its active state.
	Pressed bool

	// Timestamp is when the transition was observed.
	Timestamp time.Time
}

// NewEvent creates an event with the current timestamp.
func NewEvent(device uuid.UUID, typ Type, code int, pressed bool) Event {
	return Event{
		Device:    device,
		Type:      typ,
		Code:      code,
		Pressed:   pressed,
		Timestamp: time.Now(),
	}
}

// Origin identifies the physical input an event came from, independent of
// transition direction. It is comparable and usable as a map key.
type Origin struct {
	Device uuid.UUID
	Type   Type
	Code   int
}

// Origin returns the event's origin identity.
func (e Event) Origin() Origin {
	return Origin{Device: e.Device, Type: e.Type, Code: e.Code}
}

// String returns a compact description for logs and tests.
func (e Event) String() string {
	state := "released"
	if e.Pressed {
		state = "pressed"
	}
	return fmt.Sprintf("%s %d on %s %s", e.Type, e.Code, e.Device, state)
}

// Value is the interpreted state of an event as seen by action functors.
// The host's activation-condition stage may substitute a value that
// differs from the raw event (for example for axis-derived buttons).
type Value struct {
	// Current is true while the bound input is considered active.
	Current bool
}

// ValueOf returns the value corresponding to an event's raw state.
func ValueOf(e Event) Value {
	return Value{Current: e.Pressed}
}
