package statetoggle

import (
	"github.com/dshills/cyclekeys/internal/action"
	"github.com/dshills/cyclekeys/internal/input"
	"github.com/dshills/cyclekeys/internal/input/key"
)

// Action identity.
const (
	// TagName is the XML element tag for the action.
	TagName = "StateToggle"

	// DisplayName is the human-readable action name.
	DisplayName = "State Toggle"
)

func init() {
	action.Register(TagName, func() action.Action { return New() })
}

// Toggle is the persisted configuration of a state-toggle action: the
// ordered list of key-combination states the bound input cycles through.
type Toggle struct {
	states StateList
}

// New creates a toggle with no states configured.
func New() *Toggle {
	return &Toggle{}
}

// Tag implements action.Action.
func (t *Toggle) Tag() string {
	return TagName
}

// Name implements action.Action.
func (t *Toggle) Name() string {
	return DisplayName
}

// InputTypes lists the physical input kinds the action can bind to.
func (t *Toggle) InputTypes() []input.Type {
	return []input.Type{
		input.TypeAxis,
		input.TypeButton,
		input.TypeHat,
		input.TypeKeyboard,
	}
}

// RequiresVirtualButton reports whether an activation condition must sit
// in front of the action. Axis and hat inputs have no natural press and
// release of their own, so they need one.
func (t *Toggle) RequiresVirtualButton(typ input.Type) bool {
	return typ == input.TypeAxis || typ == input.TypeHat
}

// IsValid reports whether at least one state is configured.
func (t *Toggle) IsValid() bool {
	return t.states.IsValid()
}

// NumStates returns the number of configured states.
func (t *Toggle) NumStates() int {
	return t.states.Len()
}

// States returns a deep copy of the configured state list.
func (t *Toggle) States() StateList {
	return t.states.Clone()
}

// Resize grows or shrinks the state list; see StateList.Resize.
func (t *Toggle) Resize(n int) error {
	return t.states.Resize(n)
}

// SetState replaces the combination at index i wholesale.
func (t *Toggle) SetState(i int, c key.Combination) error {
	return t.states.SetState(i, c)
}

// State returns the combination at index i.
func (t *Toggle) State(i int) (key.Combination, error) {
	return t.states.State(i)
}

// NewFunctor compiles the configuration into its runtime engine.
// Fails with ErrInvalidConfiguration when no states are configured.
func (t *Toggle) NewFunctor(env action.Environment) (action.Functor, error) {
	return newFunctor(t.states, env)
}

// Compile-time check that Toggle satisfies the action contract.
var _ action.Action = (*Toggle)(nil)
