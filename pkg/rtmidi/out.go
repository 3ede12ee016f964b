package rtmidi

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/robhardwick/rtmidi-go/internal/bindings"
)

// Out is a handle to MIDI output. Messages are sent immediately; RtMidi
// provides no scheduling.
//
// An Out is not safe for concurrent use; serialize access externally.
type Out struct {
	device
}

// NewOut creates an output handle. With no options the native library
// chooses the backend and the client registers as "RtMidi Output Client".
func NewOut(opts ...Option) (*Out, error) {
	o := newOptions(defaultOutClientName, opts)
	if err := checkName(o.clientName); err != nil {
		return nil, err
	}
	ptr, err := bindings.OutCreate(uint32(o.api), o.clientName)
	if err != nil {
		return nil, remapError(err)
	}
	out := &Out{device: device{ptr: ptr, log: o.log, name: o.clientName}}
	runtime.SetFinalizer(out, func(out *Out) { _ = out.Close() })
	out.log.Debug("output created", zap.String("client", o.clientName), zap.Stringer("api", out.API()))
	return out, nil
}

// API reports the backend the handle actually bound. It is never
// APIUnspecified on a live handle; a closed handle reports APIUnspecified.
func (out *Out) API() API {
	if out.closed() {
		return APIUnspecified
	}
	return toAPI(bindings.OutCurrentAPI(out.ptr))
}

// SendMessage transmits a single complete MIDI message, immediately and
// unmodified in length and content. The slice may hold a channel message, a
// single realtime byte, or a full sysex payload; the backend reports
// delivery failures through the returned error.
func (out *Out) SendMessage(msg []byte) error {
	if out.closed() {
		return ErrClosed
	}
	return remapError(bindings.OutSendMessage(out.ptr, msg))
}

// Close closes the port and frees the native instance. Close is idempotent
// and a finalizer backstops handles that are never closed explicitly.
func (out *Out) Close() error {
	if out == nil || out.ptr == nil {
		return nil
	}
	runtime.SetFinalizer(out, nil)
	err := remapError(bindings.ClosePort(out.ptr))
	bindings.OutFree(out.ptr)
	out.ptr = nil
	out.log.Debug("output closed", zap.String("client", out.name))
	return err
}
