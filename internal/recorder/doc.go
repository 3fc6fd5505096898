// Package recorder captures key combinations interactively from the
// terminal.
//
// A terminal cannot observe raw key state, so a chord is taken from a
// single tcell key event: active modifiers become their canonical
// modifier keys and the main key is mapped to its scan code. Pressing a
// new key replaces the pending chord, Enter accepts it, and Escape
// cancels the recording.
package recorder
