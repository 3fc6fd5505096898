// Package autorelease tracks one-shot callbacks fired when a physical
// input's release is observed.
//
// Some bound inputs (axis-derived virtual buttons in particular) do not
// reliably deliver their own release through normal event dispatch. An
// action that presses keys on activation registers a callback here,
// keyed to the originating input; when that input's release is observed
// the callback runs exactly once and the registration is discarded.
package autorelease

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/cyclekeys/internal/input"
)

// Callback is invoked when the registered input's release is observed.
// Callbacks run on the observer's goroutine, which may differ from the
// registering goroutine; anything they touch must be safe for that.
type Callback func()

type registration struct {
	id uuid.UUID
	fn Callback
}

// Registry holds pending release callbacks keyed by input origin.
// All methods are safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	pending map[input.Origin][]registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{pending: make(map[input.Origin][]registration)}
}

// Register arms fn to run when the origin of ev is next observed
// released. Returns a registration ID usable with Cancel.
func (r *Registry) Register(fn Callback, ev input.Event) (uuid.UUID, error) {
	if fn == nil {
		return uuid.Nil, ErrNilCallback
	}

	reg := registration{id: uuid.New(), fn: fn}
	origin := ev.Origin()

	r.mu.Lock()
	r.pending[origin] = append(r.pending[origin], reg)
	r.mu.Unlock()

	return reg.id, nil
}

// Cancel removes a pending registration. Returns false if the
// registration already fired or was never made.
func (r *Registry) Cancel(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for origin, regs := range r.pending {
		for i, reg := range regs {
			if reg.id == id {
				regs = append(regs[:i], regs[i+1:]...)
				if len(regs) == 0 {
					delete(r.pending, origin)
				} else {
					r.pending[origin] = regs
				}
				return true
			}
		}
	}
	return false
}

// Observe feeds a physical event through the registry. A release event
// fires and discards every callback registered for its origin, in
// registration order. Press events are ignored.
func (r *Registry) Observe(ev input.Event) {
	if ev.Pressed {
		return
	}

	origin := ev.Origin()

	r.mu.Lock()
	regs := r.pending[origin]
	delete(r.pending, origin)
	r.mu.Unlock()

	// Invoke outside the lock so callbacks may re-register.
	for _, reg := range regs {
		reg.fn()
	}
}

// Pending returns the number of armed registrations.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, regs := range r.pending {
		n += len(regs)
	}
	return n
}
