package action

import (
	"encoding/xml"

	"github.com/google/uuid"

	"github.com/dshills/cyclekeys/internal/autorelease"
	"github.com/dshills/cyclekeys/internal/input"
	"github.com/dshills/cyclekeys/internal/macro"
)

// MacroQueue is the slice of the macro execution queue a functor needs.
// Enqueue must be non-blocking and safe to call from any goroutine.
type MacroQueue interface {
	Enqueue(m *macro.Macro) error
}

// ReleaseRegistrar arms one-shot callbacks fired when the origin of the
// given event is observed released.
type ReleaseRegistrar interface {
	Register(fn autorelease.Callback, ev input.Event) (uuid.UUID, error)
}

// Environment carries the external collaborators a functor is wired to.
type Environment struct {
	// Queue is the macro execution queue.
	Queue MacroQueue

	// Release is the auto-release detector.
	Release ReleaseRegistrar
}

// Functor is the runtime form of an action, constructed once per active
// binding. ProcessEvent is invoked synchronously on the dispatch
// goroutine; it must not block. The return value reports whether event
// propagation to later processing stages should continue.
type Functor interface {
	ProcessEvent(ev input.Event, val input.Value) bool
}

// Action is one configurable action type. Implementations hold the
// persisted configuration and compile it into a Functor on demand.
type Action interface {
	// Tag is the XML element tag identifying the action type.
	Tag() string

	// Name is the human-readable action name.
	Name() string

	// InputTypes lists the physical input kinds this action accepts.
	InputTypes() []input.Type

	// RequiresVirtualButton reports whether a binding of the given input
	// kind needs an activation condition in front of this action.
	RequiresVirtualButton(t input.Type) bool

	// IsValid reports whether the configuration is complete enough to
	// compile. The host must not construct a functor from an invalid
	// action.
	IsValid() bool

	// NewFunctor compiles the configuration into its runtime form.
	NewFunctor(env Environment) (Functor, error)

	xml.Marshaler
	xml.Unmarshaler
}
