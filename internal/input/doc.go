// Package input defines the physical input event model for cyclekeys.
//
// Events describe transitions of a physical control (button, hat,
// axis-derived virtual button, or keyboard key) on a specific device.
// Devices are identified by GUID so that profiles survive re-plugging
// and device reordering.
//
// An Event carries the raw transition; a Value carries the interpreted
// state handed to action functors. The split mirrors the host contract:
// activation-condition processing may rewrite the value without touching
// the originating event.
package input
