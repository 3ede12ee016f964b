package rtmidi

import (
	"strings"
	"unicode/utf8"
	"unsafe"

	"go.uber.org/zap"

	"github.com/robhardwick/rtmidi-go/internal/bindings"
	"github.com/robhardwick/rtmidi-go/pkg/rtmidi/logging"
)

// Port indexes a MIDI port at enumeration time. Indices are positional and
// not stable across device hot-plug; re-enumerate rather than caching them.
type Port uint32

// device carries the state shared by both handle directions. The native
// instance pointer doubles as the closed flag: Close nils it.
type device struct {
	ptr  unsafe.Pointer
	log  logging.Logger
	name string
}

// checkName rejects names that cannot survive conversion to a C string.
func checkName(name string) error {
	if strings.IndexByte(name, 0) >= 0 {
		return ErrEmbeddedNull
	}
	return nil
}

func (d *device) closed() bool { return d.ptr == nil }

// OpenPort connects the handle to the port at the given index, labelling the
// connection with name. Out-of-range indices are backend-defined: most
// backends report an error, the ALSA input path accepts any index.
func (d *device) OpenPort(port Port, name string) error {
	if d.closed() {
		return ErrClosed
	}
	if err := checkName(name); err != nil {
		return err
	}
	if err := remapError(bindings.OpenPort(d.ptr, uint32(port), name)); err != nil {
		return err
	}
	d.log.Debug("port opened", zap.Uint32("port", uint32(port)), zap.String("name", name))
	return nil
}

// OpenVirtualPort creates a virtual port other clients can connect to,
// instead of binding to an existing one. The Windows Multimedia backend has
// no virtual ports and reports an error.
func (d *device) OpenVirtualPort(name string) error {
	if d.closed() {
		return ErrClosed
	}
	if err := checkName(name); err != nil {
		return err
	}
	if err := remapError(bindings.OpenVirtualPort(d.ptr, name)); err != nil {
		return err
	}
	d.log.Debug("virtual port opened", zap.String("name", name))
	return nil
}

// ClosePort disconnects the handle from its port. Closing an unopened port
// is a no-op at the native layer, so ClosePort is safe to call at any point
// in the handle's life.
func (d *device) ClosePort() error {
	if d.closed() {
		return ErrClosed
	}
	if err := remapError(bindings.ClosePort(d.ptr)); err != nil {
		return err
	}
	d.log.Debug("port closed")
	return nil
}

// PortCount reports the number of ports visible to this handle's backend. A
// system without MIDI devices reports zero with a nil error.
func (d *device) PortCount() (Port, error) {
	if d.closed() {
		return 0, ErrClosed
	}
	n, err := bindings.PortCount(d.ptr)
	if err != nil {
		return 0, remapError(err)
	}
	return Port(n), nil
}

// PortName returns the display name of the port at the given index. An
// out-of-range index yields an empty name with a nil error, following the
// native warning path.
func (d *device) PortName(port Port) (string, error) {
	if d.closed() {
		return "", ErrClosed
	}
	name, err := bindings.PortName(d.ptr, uint32(port))
	if err != nil {
		return "", remapError(err)
	}
	if !utf8.ValidString(name) {
		return "", ErrInvalidUTF8
	}
	return name, nil
}
