// Package macro provides keyboard macro construction and playback for
// cyclekeys.
//
// A Macro is an ordered sequence of press/release primitives. Macros are
// built once, typically when an action binding is compiled, and then
// enqueued for playback whenever the bound input fires.
//
// Playback is owned by the Queue: a thread-safe FIFO whose worker
// goroutine feeds primitives to a Synthesizer. Enqueue never blocks the
// caller, which keeps input dispatch decoupled from playback latency.
//
// # Thread Safety
//
// Queue is safe for concurrent use. Enqueue may be called from any
// goroutine, including auto-release callbacks running on a different
// dispatch thread than the one that queued the matching press.
package macro
