// Package action defines the contract between the cyclekeys runtime and
// the action types that inputs can be bound to.
//
// An Action is configuration: it validates itself, serializes to and
// from profile XML, and compiles into a Functor. A Functor is the
// runtime form, constructed once per active binding; it receives the
// bound input's transition events and drives the macro queue.
//
// Action types register a factory under their XML tag with a Registry,
// which the profile codec uses to decode binding children it does not
// know statically.
package action
