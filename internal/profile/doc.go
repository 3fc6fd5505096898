// Package profile implements the on-disk remapping profile: bindings
// from physical inputs to configured actions.
//
// A profile is an XML document. Each binding names its device by GUID,
// the input kind, and the device-local input index, and contains one
// element per configured action. Action elements are decoded through
// the action registry, so the profile codec needs no static knowledge
// of individual action types.
//
// Loading is fail-fast: a malformed binding or action rejects the whole
// document rather than activating a partially parsed configuration.
// Saving is atomic (temp file plus rename). The Watcher reloads a
// profile when the file changes on disk.
package profile
