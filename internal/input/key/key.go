package key

import "fmt"

// ID identifies a single physical key by scan code and extended flag.
// It is an immutable value type; two IDs are equal iff both fields match.
type ID struct {
	// Code is the hardware scan code (set 1 make code).
	Code uint16

	// Extended is true for keys in the extended scan code set.
	Extended bool
}

// New returns the ID for a scan code and extended flag.
func New(code uint16, extended bool) ID {
	return ID{Code: code, Extended: extended}
}

// Name returns a human-readable name for the key.
// Unknown scan codes are rendered numerically.
func (id ID) Name() string {
	var table map[uint16]string
	if id.Extended {
		table = extendedNames
	} else {
		table = standardNames
	}
	if name, ok := table[id.Code]; ok {
		return name
	}
	if id.Extended {
		return fmt.Sprintf("Key(0xE0 %d)", id.Code)
	}
	return fmt.Sprintf("Key(%d)", id.Code)
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return id.Name()
}

// extendedBit marks extended keys in the packed integer form.
const extendedBit = 0x100

// EventCode packs the identity into a single integer, offsetting
// extended keys by 256. Keyboard event codes and profile input ids use
// this form.
func (id ID) EventCode() int {
	if id.Extended {
		return int(id.Code) | extendedBit
	}
	return int(id.Code)
}

// FromEventCode unpacks an integer produced by EventCode.
func FromEventCode(code int) ID {
	return ID{Code: uint16(code &^ extendedBit), Extended: code&extendedBit != 0}
}

// standardNames maps scan codes of the standard key set to display names.
var standardNames = map[uint16]string{
	1:  "Escape",
	2:  "1",
	3:  "2",
	4:  "3",
	5:  "4",
	6:  "5",
	7:  "6",
	8:  "7",
	9:  "8",
	10: "9",
	11: "0",
	12: "-",
	13: "=",
	14: "Backspace",
	15: "Tab",
	16: "Q",
	17: "W",
	18: "E",
	19: "R",
	20: "T",
	21: "Y",
	22: "U",
	23: "I",
	24: "O",
	25: "P",
	26: "[",
	27: "]",
	28: "Enter",
	29: "LeftControl",
	30: "A",
	31: "S",
	32: "D",
	33: "F",
	34: "G",
	35: "H",
	36: "J",
	37: "K",
	38: "L",
	39: ";",
	40: "'",
	41: "`",
	42: "LeftShift",
	43: "\\",
	44: "Z",
	45: "X",
	46: "C",
	47: "V",
	48: "B",
	49: "N",
	50: "M",
	51: ",",
	52: ".",
	53: "/",
	54: "RightShift",
	55: "KPMultiply",
	56: "LeftAlt",
	57: "Space",
	58: "CapsLock",
	59: "F1",
	60: "F2",
	61: "F3",
	62: "F4",
	63: "F5",
	64: "F6",
	65: "F7",
	66: "F8",
	67: "F9",
	68: "F10",
	69: "NumLock",
	70: "ScrollLock",
	71: "KP7",
	72: "KP8",
	73: "KP9",
	74: "KPMinus",
	75: "KP4",
	76: "KP5",
	77: "KP6",
	78: "KPPlus",
	79: "KP1",
	80: "KP2",
	81: "KP3",
	82: "KP0",
	83: "KPDecimal",
	87: "F11",
	88: "F12",
}

// extendedNames maps scan codes of the extended key set to display names.
var extendedNames = map[uint16]string{
	28: "KPEnter",
	29: "RightControl",
	53: "KPDivide",
	55: "PrintScreen",
	56: "RightAlt",
	71: "Home",
	72: "Up",
	73: "PageUp",
	75: "Left",
	77: "Right",
	79: "End",
	80: "Down",
	81: "PageDown",
	82: "Insert",
	83: "Delete",
	91: "LeftSuper",
	92: "RightSuper",
	93: "Menu",
}

// nameIDs is the inverse of the name tables.
var nameIDs = buildNameIndex()

func buildNameIndex() map[string]ID {
	index := make(map[string]ID, len(standardNames)+len(extendedNames))
	for code, n := range standardNames {
		index[n] = ID{Code: code}
	}
	for code, n := range extendedNames {
		index[n] = ID{Code: code, Extended: true}
	}
	return index
}

// FromName returns the ID for a display name as produced by Name.
// The second return value reports whether the name is known.
func FromName(name string) (ID, bool) {
	id, ok := nameIDs[name]
	return id, ok
}
