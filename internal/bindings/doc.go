// Package bindings hosts the thin cgo layer over the RtMidi C API. The real
// implementation lives behind build tags so that the rest of the repository
// can compile without cgo: the default build targets the current RtMidi ABI
// (5.0 and later), the rtmidi30 tag selects the legacy 3.x ABI, and non-cgo
// builds fall back to stubs that report ErrNotBuilt. This package should only
// be imported by pkg/rtmidi.
package bindings
