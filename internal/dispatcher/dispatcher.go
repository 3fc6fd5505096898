package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dshills/cyclekeys/internal/action"
	"github.com/dshills/cyclekeys/internal/autorelease"
	"github.com/dshills/cyclekeys/internal/input"
	"github.com/dshills/cyclekeys/internal/profile"
)

// Dispatcher routes input events to compiled bindings.
type Dispatcher struct {
	queue   action.MacroQueue
	release *autorelease.Registry

	mu       sync.RWMutex
	bindings map[input.Origin][]action.Functor

	// Stats
	routed    atomic.Uint64
	unmatched atomic.Uint64
}

// New creates a dispatcher wired to the macro queue and auto-release
// registry the compiled functors will use.
func New(queue action.MacroQueue, release *autorelease.Registry) (*Dispatcher, error) {
	if queue == nil {
		return nil, ErrNilQueue
	}
	if release == nil {
		return nil, ErrNilRelease
	}
	return &Dispatcher{
		queue:    queue,
		release:  release,
		bindings: make(map[input.Origin][]action.Functor),
	}, nil
}

// LoadProfile compiles every binding of p and swaps the binding table
// atomically. Invalid or uncompilable actions fail the whole load and
// leave the previous table active; a half-applied profile could send
// wrong keys to the target application.
func (d *Dispatcher) LoadProfile(p *profile.Profile) error {
	env := action.Environment{Queue: d.queue, Release: d.release}

	table := make(map[input.Origin][]action.Functor, len(p.Bindings))
	var errs []error
	for _, b := range p.Bindings {
		for _, act := range b.Actions {
			if !act.IsValid() {
				errs = append(errs, fmt.Errorf("%s on %s %d: %w",
					act.Name(), b.Type, b.Code, action.ErrInvalidConfiguration))
				continue
			}
			functor, err := act.NewFunctor(env)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s on %s %d: %w", act.Name(), b.Type, b.Code, err))
				continue
			}
			origin := b.Origin()
			table[origin] = append(table[origin], functor)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	d.mu.Lock()
	d.bindings = table
	d.mu.Unlock()
	return nil
}

// HandleEvent routes one event to its binding's functors, then feeds
// release events to the auto-release registry. Must not be called
// concurrently for the same input; Run provides that guarantee.
func (d *Dispatcher) HandleEvent(ev input.Event) {
	d.mu.RLock()
	functors := d.bindings[ev.Origin()]
	d.mu.RUnlock()

	if len(functors) == 0 {
		d.unmatched.Add(1)
	} else {
		val := input.ValueOf(ev)
		for _, f := range functors {
			if !f.ProcessEvent(ev, val) {
				break
			}
		}
		d.routed.Add(1)
	}

	// Fire armed auto-releases after normal delivery so a functor's own
	// deactivation handling runs first.
	d.release.Observe(ev)
}

// Run consumes events until the channel closes or the context is done.
// All events pass through this single goroutine, serializing functor
// invocation across every binding.
func (d *Dispatcher) Run(ctx context.Context, events <-chan input.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			d.HandleEvent(ev)
		}
	}
}

// Bindings returns the number of distinct inputs currently bound.
func (d *Dispatcher) Bindings() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.bindings)
}

// Stats reports routing counters.
type Stats struct {
	Routed    uint64
	Unmatched uint64
}

// Stats returns a snapshot of the routing counters.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Routed:    d.routed.Load(),
		Unmatched: d.unmatched.Load(),
	}
}
