package synth

import (
	"sync"

	"github.com/dshills/cyclekeys/internal/input/key"
)

// Primitive is one key press or release seen by the loopback.
type Primitive struct {
	Key     key.ID
	Pressed bool
}

// Loopback is a Synthesizer that records primitives instead of injecting
// them. It backs tests and the daemon's dry-run mode.
type Loopback struct {
	mu    sync.Mutex
	log   []Primitive
	held  map[key.ID]bool
	onKey func(Primitive)
}

// NewLoopback creates an empty loopback synthesizer.
func NewLoopback() *Loopback {
	return &Loopback{held: make(map[key.ID]bool)}
}

// OnKey sets a callback invoked for every primitive, after recording.
// Used by dry-run mode to echo activity.
func (l *Loopback) OnKey(fn func(Primitive)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onKey = fn
}

// Press records a key press.
func (l *Loopback) Press(id key.ID) error {
	return l.record(Primitive{Key: id, Pressed: true})
}

// Release records a key release.
func (l *Loopback) Release(id key.ID) error {
	return l.record(Primitive{Key: id, Pressed: false})
}

func (l *Loopback) record(p Primitive) error {
	l.mu.Lock()
	l.log = append(l.log, p)
	if p.Pressed {
		l.held[p.Key] = true
	} else {
		delete(l.held, p.Key)
	}
	fn := l.onKey
	l.mu.Unlock()

	if fn != nil {
		fn(p)
	}
	return nil
}

// Log returns a copy of all primitives recorded so far.
func (l *Loopback) Log() []Primitive {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Primitive, len(l.log))
	copy(out, l.log)
	return out
}

// Held returns the keys currently pressed and not yet released.
func (l *Loopback) Held() []key.ID {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]key.ID, 0, len(l.held))
	for id := range l.held {
		out = append(out, id)
	}
	return out
}

// Reset clears the recorded log and held-key state.
func (l *Loopback) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log = nil
	l.held = make(map[key.ID]bool)
}
