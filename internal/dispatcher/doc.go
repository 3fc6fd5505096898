// Package dispatcher routes physical input events to the functors
// compiled from the active profile.
//
// A Dispatcher owns the binding table. Profiles are compiled into it
// atomically, so a live reload swaps every binding at once. Events for
// all inputs flow through a single Run loop, which gives functors the
// serialization guarantee they rely on: ProcessEvent is never invoked
// concurrently for the same binding.
//
// After routing, release events are fed to the auto-release registry so
// that armed callbacks fire even for inputs whose own release does not
// reach their functor.
package dispatcher
