// Package rtmidi provides Go bindings for the RtMidi library, a common API
// for realtime MIDI input and output over ALSA, JACK, CoreMIDI and the
// Windows Multimedia API.
//
// In receives messages through a bounded queue or an installed callback; Out
// sends them immediately. Both are thin handles over native instances:
// messages are raw bytes, port indices are positional, and every native
// failure surfaces as an error.
//
// The exported types compile without cgo; in that configuration every
// constructor returns ErrNotBuilt. Cgo builds link against the system RtMidi
// through pkg-config and target the current ABI (5.0 and later) by default;
// build with -tags rtmidi30 against a legacy 3.x library.
package rtmidi
