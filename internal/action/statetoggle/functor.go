package statetoggle

import (
	"fmt"

	"github.com/dshills/cyclekeys/internal/action"
	"github.com/dshills/cyclekeys/internal/input"
	"github.com/dshills/cyclekeys/internal/macro"
)

// Functor is the runtime engine of a state-toggle binding. It holds the
// press and release macros precompiled per state plus the cycle cursor.
//
// The cursor is mutated only inside ProcessEvent, which the dispatcher
// invokes serially per binding; auto-release callbacks touch only the
// macro queue, which is thread-safe, so the functor itself needs no
// locking.
type Functor struct {
	env action.Environment

	press            []*macro.Macro
	release          []*macro.Macro
	needsAutoRelease []bool

	numStates int
	current   int
}

// newFunctor precompiles the per-state macros from a snapshot of the
// state list. A list with zero states cannot produce a working engine
// and is rejected outright.
func newFunctor(states StateList, env action.Environment) (*Functor, error) {
	if !states.IsValid() {
		return nil, fmt.Errorf("%w: state toggle has no states", action.ErrInvalidConfiguration)
	}

	f := &Functor{
		env:              env,
		press:            make([]*macro.Macro, len(states)),
		release:          make([]*macro.Macro, len(states)),
		needsAutoRelease: make([]bool, len(states)),
		numStates:        len(states),
	}

	for i, combo := range states {
		f.press[i] = macro.PressCombination(combo)
		f.release[i] = macro.ReleaseCombination(combo)
		// Always armed today; kept per state for future policy.
		f.needsAutoRelease[i] = true
	}

	return f, nil
}

// ProcessEvent converts one transition of the bound input into queued
// macros.
//
// Activation enqueues the current state's press macro and arms an
// auto-release for the originating input; the cursor does not move.
// Deactivation enqueues the current state's release macro and then
// advances the cursor, wrapping modulo the state count. A deactivation
// with no preceding activation still releases and advances; that
// asymmetry is deliberate and load-bearing.
//
// Always returns true: this engine never vetoes propagation to later
// processing stages. Enqueue failures are the queue's concern.
func (f *Functor) ProcessEvent(ev input.Event, val input.Value) bool {
	if val.Current {
		_ = f.env.Queue.Enqueue(f.press[f.current])

		if f.needsAutoRelease[f.current] {
			// Capture the armed state's release macro by value; the
			// cursor may have advanced by the time the callback runs.
			release := f.release[f.current]
			_, _ = f.env.Release.Register(func() {
				_ = f.env.Queue.Enqueue(release)
			}, ev)
		}
	} else {
		_ = f.env.Queue.Enqueue(f.release[f.current])
		f.current = (f.current + 1) % f.numStates
	}

	return true
}

// Current returns the cycle cursor, the index of the state the next
// activation will play.
func (f *Functor) Current() int {
	return f.current
}

// NumStates returns the number of states the engine cycles through.
func (f *Functor) NumStates() int {
	return f.numStates
}

var _ action.Functor = (*Functor)(nil)
