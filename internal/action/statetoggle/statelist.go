package statetoggle

import (
	"fmt"

	"github.com/dshills/cyclekeys/internal/action"
	"github.com/dshills/cyclekeys/internal/input/key"
)

// MaxStates is the largest number of states the UI permits.
// Loaded documents may exceed it; see the codec notes.
const MaxStates = 10

// StateList is the ordered sequence of key combinations an action cycles
// through. Its length is the number of configured states.
type StateList []key.Combination

// Resize grows or shrinks the list to n states. Growing appends empty
// combinations at the tail; shrinking drops trailing combinations.
// Interior states are never reordered or edited. n outside
// [0, MaxStates] is rejected and leaves the list untouched.
func (l *StateList) Resize(n int) error {
	if n < 0 || n > MaxStates {
		return fmt.Errorf("%w: state count %d outside [0, %d]", action.ErrInvalidArgument, n, MaxStates)
	}

	cur := len(*l)
	switch {
	case n > cur:
		for i := cur; i < n; i++ {
			*l = append(*l, key.Combination{})
		}
	case n < cur:
		*l = (*l)[:n]
	}
	return nil
}

// SetState replaces the combination at index i wholesale.
func (l *StateList) SetState(i int, c key.Combination) error {
	if i < 0 || i >= len(*l) {
		return fmt.Errorf("%w: state %d of %d", action.ErrIndexOutOfRange, i, len(*l))
	}
	(*l)[i] = c.Clone()
	return nil
}

// State returns the combination at index i.
func (l StateList) State(i int) (key.Combination, error) {
	if i < 0 || i >= len(l) {
		return nil, fmt.Errorf("%w: state %d of %d", action.ErrIndexOutOfRange, i, len(l))
	}
	return l[i].Clone(), nil
}

// Len returns the number of configured states.
func (l StateList) Len() int {
	return len(l)
}

// IsValid reports whether the list has at least one state.
func (l StateList) IsValid() bool {
	return len(l) > 0
}

// Clone returns a deep copy of the list.
func (l StateList) Clone() StateList {
	if l == nil {
		return nil
	}
	out := make(StateList, len(l))
	for i, c := range l {
		out[i] = c.Clone()
	}
	return out
}

// Equal reports whether two lists hold the same combinations in order.
func (l StateList) Equal(other StateList) bool {
	if len(l) != len(other) {
		return false
	}
	for i, c := range l {
		if !c.Equal(other[i]) {
			return false
		}
	}
	return true
}
