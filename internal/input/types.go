package input

import "fmt"

// Type identifies the kind of physical input an event originates from.
type Type int

const (
	// TypeUnknown is the zero value; events must carry a concrete type.
	TypeUnknown Type = iota

	// TypeButton is a physical device button.
	TypeButton

	// TypeAxis is an axis-derived virtual button.
	TypeAxis

	// TypeHat is a hat (POV) switch direction.
	TypeHat

	// TypeKeyboard is a keyboard key.
	TypeKeyboard
)

// String returns the canonical name of the input type.
func (t Type) String() string {
	switch t {
	case TypeButton:
		return "button"
	case TypeAxis:
		return "axis"
	case TypeHat:
		return "hat"
	case TypeKeyboard:
		return "keyboard"
	default:
		return fmt.Sprintf("Type(%d)", t)
	}
}

// TypeFromString parses the canonical name of an input type.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "button":
		return TypeButton, nil
	case "axis":
		return TypeAxis, nil
	case "hat":
		return TypeHat, nil
	case "keyboard":
		return TypeKeyboard, nil
	default:
		return TypeUnknown, fmt.Errorf("unknown input type %q", s)
	}
}
