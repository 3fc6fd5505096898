package key

import "strings"

// Combination is an ordered chord of keys pressed together.
// Order is the order the keys were recorded in; it has no effect on
// simultaneity but is preserved for deterministic serialization and
// macro construction. A Combination may be empty.
type Combination []ID

// Clone returns a deep copy of the combination.
func (c Combination) Clone() Combination {
	if c == nil {
		return nil
	}
	out := make(Combination, len(c))
	copy(out, c)
	return out
}

// Equal reports whether two combinations contain the same keys in the
// same order.
func (c Combination) Equal(other Combination) bool {
	if len(c) != len(other) {
		return false
	}
	for i, id := range c {
		if id != other[i] {
			return false
		}
	}
	return true
}

// String returns the display names of the keys joined with " + ".
func (c Combination) String() string {
	if len(c) == 0 {
		return "(empty)"
	}
	names := make([]string, len(c))
	for i, id := range c {
		names[i] = id.Name()
	}
	return strings.Join(names, " + ")
}
