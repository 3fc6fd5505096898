package profile

import "fmt"

// ParseBool parses the boolean encoding used in profile documents.
// Accepted forms are "True"/"False", their lowercase variants, and
// "1"/"0". Anything else is a parse error.
func ParseBool(s string) (bool, error) {
	switch s {
	case "True", "true", "1":
		return true, nil
	case "False", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", s)
	}
}

// FormatBool returns the canonical document form of a boolean,
// "True" or "False". ParseBool(FormatBool(b)) == b for all b.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
