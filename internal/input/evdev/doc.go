// Package evdev reads keyboard transitions from Linux input device
// nodes and converts them to input events.
//
// Each device node gets a deterministic GUID derived from its path, so
// profile bindings keep addressing the same device across runs. Evdev
// key codes are translated to scan code identities; codes outside the
// standard set are resolved through the extended key table, and codes
// with no mapping are dropped.
package evdev
