package rtmidi

import (
	"errors"

	"github.com/robhardwick/rtmidi-go/internal/bindings"
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary (non-cgo build).
	ErrNotBuilt = errors.New("rtmidi: native bindings not built")

	// ErrClosed reports use of a handle after Close.
	ErrClosed = errors.New("rtmidi: device has been closed")

	// ErrEmbeddedNull rejects a client or port name containing a NUL byte,
	// which cannot cross the C string boundary intact.
	ErrEmbeddedNull = errors.New("rtmidi: name contains an embedded null byte")

	// ErrNullPointer reports a null string or instance from the native layer
	// where the status block claimed success.
	ErrNullPointer = errors.New("rtmidi: native library returned a null pointer")

	// ErrInvalidUTF8 reports native text that could not be decoded.
	ErrInvalidUTF8 = errors.New("rtmidi: native string is not valid UTF-8")

	// ErrNilCallback rejects SetCallback(nil); use CancelCallback to detach.
	ErrNilCallback = errors.New("rtmidi: callback must not be nil")
)

// Error carries a failure message reported through a native instance's
// status block, verbatim.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// remapError converts bindings-layer errors to the public set.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	var native *bindings.NativeError
	if errors.As(err, &native) {
		return &Error{Message: native.Msg}
	}
	if errors.Is(err, bindings.ErrNotBuilt) {
		return ErrNotBuilt
	}
	if errors.Is(err, bindings.ErrNullPointer) {
		return ErrNullPointer
	}
	return err
}
