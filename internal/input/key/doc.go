// Package key defines keyboard key identities for cyclekeys.
//
// Keys are identified by their hardware scan code plus an extended flag,
// independent of layout or display name. The extended flag distinguishes
// keys that share a scan code between the standard and extended keyboard
// sets (for example left control and right control).
//
// A Combination is an ordered set of key identities that are pressed
// together as a single chord. Order carries no simultaneity semantics but
// is preserved so that serialization and macro construction stay
// deterministic.
package key
