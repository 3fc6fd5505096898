package macro

import (
	"fmt"
	"strings"

	"github.com/dshills/cyclekeys/internal/input/key"
)

// Op is the kind of a macro primitive.
type Op int

const (
	// OpPress presses a key.
	OpPress Op = iota

	// OpRelease releases a key.
	OpRelease
)

// String returns the canonical name of the op.
func (o Op) String() string {
	switch o {
	case OpPress:
		return "press"
	case OpRelease:
		return "release"
	default:
		return fmt.Sprintf("Op(%d)", o)
	}
}

// Step is a single press or release of one key.
type Step struct {
	Op  Op
	Key key.ID
}

// Macro is an ordered sequence of press/release primitives.
// The zero value is an empty macro ready for use.
type Macro struct {
	steps []Step
}

// New returns an empty macro.
func New() *Macro {
	return &Macro{}
}

// Press appends a press of the given key.
func (m *Macro) Press(id key.ID) {
	m.steps = append(m.steps, Step{Op: OpPress, Key: id})
}

// Release appends a release of the given key.
func (m *Macro) Release(id key.ID) {
	m.steps = append(m.steps, Step{Op: OpRelease, Key: id})
}

// Len returns the number of primitives in the macro.
func (m *Macro) Len() int {
	return len(m.steps)
}

// Steps returns a copy of the macro's primitives.
func (m *Macro) Steps() []Step {
	out := make([]Step, len(m.steps))
	copy(out, m.steps)
	return out
}

// String returns a compact description for logs and tests.
func (m *Macro) String() string {
	if len(m.steps) == 0 {
		return "(empty macro)"
	}
	parts := make([]string, len(m.steps))
	for i, s := range m.steps {
		parts[i] = fmt.Sprintf("%s %s", s.Op, s.Key)
	}
	return strings.Join(parts, ", ")
}

// PressCombination builds a macro that presses every key of the
// combination in combination order.
func PressCombination(c key.Combination) *Macro {
	m := New()
	for _, id := range c {
		m.Press(id)
	}
	return m
}

// ReleaseCombination builds a macro that releases every key of the
// combination in combination order.
func ReleaseCombination(c key.Combination) *Macro {
	m := New()
	for _, id := range c {
		m.Release(id)
	}
	return m
}
