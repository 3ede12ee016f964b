package rtmidi

import (
	"errors"
	"testing"

	"github.com/robhardwick/rtmidi-go/internal/bindings"
)

// newTestIn opens an input handle or skips the test when no native backend is
// usable on this machine.
func newTestIn(t *testing.T, opts ...Option) *In {
	t.Helper()
	in, err := NewIn(opts...)
	if err != nil {
		var devErr *Error
		switch {
		case errors.Is(err, ErrNotBuilt):
			t.Skip("built without cgo")
		case errors.As(err, &devErr):
			t.Skipf("no usable MIDI backend: %v", err)
		default:
			t.Fatalf("NewIn: %v", err)
		}
	}
	t.Cleanup(func() { _ = in.Close() })
	return in
}

func TestNewInRejectsEmbeddedNull(t *testing.T) {
	if _, err := NewIn(WithClientName("probe\x00")); !errors.Is(err, ErrEmbeddedNull) {
		t.Fatalf("NewIn with embedded null: %v, want ErrEmbeddedNull", err)
	}
}

func TestInLifecycle(t *testing.T) {
	in := newTestIn(t, WithClientName("rtmidi-go test input"))

	if got := in.API(); got == APIUnspecified {
		t.Fatal("API() resolved to unspecified on an open handle")
	}
	if _, err := in.PortCount(); err != nil {
		t.Fatalf("PortCount: %v", err)
	}
	name, err := in.PortName(9999)
	if err != nil {
		t.Fatalf("PortName(9999): %v", err)
	}
	if name != "" {
		t.Fatalf("PortName(9999) = %q, want empty for out-of-range index", name)
	}
	if err := in.IgnoreTypes(true, true, true); err != nil {
		t.Fatalf("IgnoreTypes: %v", err)
	}
	msg, ts, err := in.Message()
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	if len(msg) != 0 || ts != 0 {
		t.Fatalf("Message on empty queue = (%v, %v), want no message", msg, ts)
	}
}

func TestInOpenPortOutOfRange(t *testing.T) {
	in := newTestIn(t)

	err := in.OpenPort(9999, "rtmidi-go test")
	switch in.API() {
	case APILinuxALSA:
		// The ALSA input backend accepts arbitrary port indices.
		if err != nil {
			t.Fatalf("OpenPort(9999) on ALSA input: %v", err)
		}
	case APIDummy:
		t.Skip("dummy backend accepts any port")
	default:
		if err == nil {
			t.Fatal("OpenPort(9999) succeeded, want error for out-of-range index")
		}
	}
}

func TestInOpenVirtualPort(t *testing.T) {
	in := newTestIn(t)

	err := in.OpenVirtualPort("rtmidi-go test virtual")
	if in.API() == APIWindowsMM {
		if err == nil {
			t.Fatal("OpenVirtualPort succeeded on the Windows Multimedia backend")
		}
		return
	}
	if err != nil {
		t.Fatalf("OpenVirtualPort: %v", err)
	}
}

func TestInClosePortWithoutOpen(t *testing.T) {
	in := newTestIn(t)
	if err := in.ClosePort(); err != nil {
		t.Fatalf("ClosePort without open: %v", err)
	}
}

func TestInCancelCallbackWithoutSet(t *testing.T) {
	in := newTestIn(t)
	if err := in.CancelCallback(); err != nil {
		t.Fatalf("CancelCallback without a callback installed: %v", err)
	}
}

func TestInCallbackInstallReplaceCancel(t *testing.T) {
	in := newTestIn(t)
	baseline := bindings.CallbackCount()

	if err := in.SetCallback(func(float64, []byte) {}); err != nil {
		t.Fatalf("SetCallback: %v", err)
	}
	if got := bindings.CallbackCount(); got != baseline+1 {
		t.Fatalf("registered callbacks = %d, want %d", got, baseline+1)
	}

	// Replacing must tear down the first registration, not stack a second.
	if err := in.SetCallback(func(float64, []byte) {}); err != nil {
		t.Fatalf("SetCallback replace: %v", err)
	}
	if got := bindings.CallbackCount(); got != baseline+1 {
		t.Fatalf("registered callbacks after replace = %d, want %d", got, baseline+1)
	}

	if err := in.CancelCallback(); err != nil {
		t.Fatalf("CancelCallback: %v", err)
	}
	if got := bindings.CallbackCount(); got != baseline {
		t.Fatalf("registered callbacks after cancel = %d, want %d", got, baseline)
	}
}

func TestInCloseReleasesCallback(t *testing.T) {
	in := newTestIn(t)
	baseline := bindings.CallbackCount()

	if err := in.SetCallback(func(float64, []byte) {}); err != nil {
		t.Fatalf("SetCallback: %v", err)
	}
	if err := in.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := bindings.CallbackCount(); got != baseline {
		t.Fatalf("registered callbacks after close = %d, want %d", got, baseline)
	}
	if err := in.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, err := in.PortCount(); !errors.Is(err, ErrClosed) {
		t.Fatalf("PortCount after close: %v, want ErrClosed", err)
	}
}
