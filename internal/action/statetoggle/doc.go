// Package statetoggle implements the State Toggle action: a bound
// physical input cycles through a fixed sequence of key-combination
// states. Activating the input plays the current state's press macro and
// arms an auto-release; deactivating it plays the matching release macro
// and advances the cycle, wrapping at the end.
//
// The package has three layers: StateList is the configured sequence of
// chords, Toggle is the persisted action (codec plus validation), and
// Functor is the runtime engine with the cycle cursor. The functor is
// compiled once per active binding from a snapshot of the configuration;
// mutating the action afterwards never affects a live functor.
package statetoggle
