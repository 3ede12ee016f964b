package bindings

import "errors"

// API specifier values shared by every build variant. Both supported RtMidi
// generations use the same numeric enum; only the C constant names differ,
// which the per-generation files reconcile.
const (
	APIUnspecified uint32 = iota
	APIMacOSXCore
	APILinuxALSA
	APIUnixJack
	APIWindowsMM
	APIDummy
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Callers can use this to fall back to safer defaults.
	ErrNotBuilt = errors.New("rtmidi/internal/bindings: native bindings not built")

	// ErrNullPointer reports a null instance or string from the native layer
	// where the status block still claimed success.
	ErrNullPointer = errors.New("rtmidi/internal/bindings: native library returned a null pointer")
)

// NativeError carries a failure message read from the status block embedded
// in a native instance, verbatim.
type NativeError struct {
	Msg string
}

func (e *NativeError) Error() string { return e.Msg }
