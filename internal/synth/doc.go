// Package synth provides keyboard output backends for macro playback.
//
// The macro queue drives a Synthesizer one primitive at a time. Two
// implementations are provided: Loopback, which records primitives in
// memory and backs tests and dry-run mode, and a Linux uinput device
// that injects real key events into the kernel input subsystem.
// Platforms without an injection backend get a stub that reports
// ErrUnsupported.
package synth
