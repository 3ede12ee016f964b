package rtmidi

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/robhardwick/rtmidi-go/internal/bindings"
)

// receiveBufferSize bounds a single polled message. Large enough for any
// channel message and for sysex payloads of practical size.
const receiveBufferSize = 64 * 1024

// Callback receives one incoming MIDI message. timestamp is the delta time
// in seconds since the previous message on this handle; message is a copy
// the callback may retain. Callbacks run on the native input thread, so they
// must not block and must not touch the handle they came from.
type Callback func(timestamp float64, message []byte)

// In is a handle to MIDI input. Incoming messages land in a bounded queue
// drained by Message, or are delivered to a Callback installed with
// SetCallback; the two modes should not be mixed on one handle.
//
// An In is not safe for concurrent use; serialize access externally. The
// native backend may invoke a registered Callback concurrently with any
// method until CancelCallback or Close returns.
type In struct {
	device
	cbID uintptr
	buf  []byte
}

// NewIn creates an input handle. With no options the native library chooses
// the backend, the client registers as "RtMidi Input Client", and up to 100
// incoming messages are queued. By native convention a new handle ignores
// sysex, timing, and active-sensing traffic; see IgnoreTypes.
func NewIn(opts ...Option) (*In, error) {
	o := newOptions(defaultInClientName, opts)
	if err := checkName(o.clientName); err != nil {
		return nil, err
	}
	ptr, err := bindings.InCreate(uint32(o.api), o.clientName, uint32(o.queueSize))
	if err != nil {
		return nil, remapError(err)
	}
	in := &In{device: device{ptr: ptr, log: o.log, name: o.clientName}}
	runtime.SetFinalizer(in, func(in *In) { _ = in.Close() })
	in.log.Debug("input created", zap.String("client", o.clientName), zap.Stringer("api", in.API()))
	return in, nil
}

// API reports the backend the handle actually bound. It is never
// APIUnspecified on a live handle; a closed handle reports APIUnspecified.
func (in *In) API() API {
	if in.closed() {
		return APIUnspecified
	}
	return toAPI(bindings.InCurrentAPI(in.ptr))
}

// IgnoreTypes adjusts which message classes the backend filters out before
// they reach the queue or callback. True suppresses the class. Construction
// defaults suppress all three.
func (in *In) IgnoreTypes(sysex, timing, activeSensing bool) error {
	if in.closed() {
		return ErrClosed
	}
	return remapError(bindings.InIgnoreTypes(in.ptr, sysex, timing, activeSensing))
}

// SetCallback delivers incoming messages to fn instead of the queue. A
// previous registration is torn down first, so no message is ever delivered
// to a cancelled callback.
func (in *In) SetCallback(fn Callback) error {
	if fn == nil {
		return ErrNilCallback
	}
	if in.closed() {
		return ErrClosed
	}
	if in.cbID != 0 {
		if err := remapError(bindings.InCancelCallback(in.ptr)); err != nil {
			return err
		}
		bindings.UnregisterCallback(in.cbID)
		in.cbID = 0
	}
	id := bindings.RegisterCallback(bindings.Callback(fn))
	if err := remapError(bindings.InSetCallback(in.ptr, id)); err != nil {
		bindings.UnregisterCallback(id)
		return err
	}
	in.cbID = id
	in.log.Debug("callback installed")
	return nil
}

// CancelCallback detaches the callback and returns delivery to the queue.
// The native cancel is issued even when no callback is installed, matching
// the underlying API. Once CancelCallback returns, the callback will not be
// invoked again.
func (in *In) CancelCallback() error {
	if in.closed() {
		return ErrClosed
	}
	err := remapError(bindings.InCancelCallback(in.ptr))
	if in.cbID != 0 {
		bindings.UnregisterCallback(in.cbID)
		in.cbID = 0
	}
	if err != nil {
		return err
	}
	in.log.Debug("callback cancelled")
	return nil
}

// Message polls the input queue. It returns the message bytes and the delta
// time in seconds since the previous message, or an empty slice with a zero
// timestamp when nothing is pending. Polling while a callback is installed
// is backend-defined; use one consumption mode per handle.
func (in *In) Message() ([]byte, float64, error) {
	if in.closed() {
		return nil, 0, ErrClosed
	}
	if in.buf == nil {
		in.buf = make([]byte, receiveBufferSize)
	}
	ts, n, err := bindings.InMessage(in.ptr, in.buf)
	if err != nil {
		return nil, 0, remapError(err)
	}
	msg := make([]byte, n)
	copy(msg, in.buf[:n])
	return msg, ts, nil
}

// Close cancels any registered callback, closes the port, and frees the
// native instance. Close is idempotent and a finalizer backstops handles
// that are never closed explicitly.
func (in *In) Close() error {
	if in == nil || in.ptr == nil {
		return nil
	}
	runtime.SetFinalizer(in, nil)
	if in.cbID != 0 {
		_ = bindings.InCancelCallback(in.ptr)
		bindings.UnregisterCallback(in.cbID)
		in.cbID = 0
	}
	err := remapError(bindings.ClosePort(in.ptr))
	bindings.InFree(in.ptr)
	in.ptr = nil
	in.log.Debug("input closed", zap.String("client", in.name))
	return err
}
