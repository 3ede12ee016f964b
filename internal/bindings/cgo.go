//go:build cgo

package bindings

/*
#cgo pkg-config: rtmidi
#include <stdlib.h>
#include <rtmidi_c.h>
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"
)

// statusErr inspects the status block embedded in a native instance. Every
// native call is followed by exactly one statusErr check, before any other
// call can overwrite the block.
func statusErr(ptr unsafe.Pointer) error {
	d := C.RtMidiPtr(ptr)
	if d.ok {
		return nil
	}
	if d.msg == nil {
		return &NativeError{Msg: "Invalid error"}
	}
	msg := C.GoString(d.msg)
	if !utf8.ValidString(msg) {
		return &NativeError{Msg: "Unknown error"}
	}
	return &NativeError{Msg: msg}
}

// InCreate constructs a native input instance. A failed construction is freed
// before the error is returned.
func InCreate(api uint32, clientName string, queueSizeLimit uint32) (unsafe.Pointer, error) {
	name := C.CString(clientName)
	defer C.free(unsafe.Pointer(name))
	in := C.rtmidi_in_create(nativeAPI(api), name, C.uint(queueSizeLimit))
	if in == nil {
		return nil, ErrNullPointer
	}
	if err := statusErr(unsafe.Pointer(in)); err != nil {
		C.rtmidi_in_free(in)
		return nil, err
	}
	return unsafe.Pointer(in), nil
}

// InFree destroys a native input instance. Any callback must be cancelled
// first.
func InFree(ptr unsafe.Pointer) {
	C.rtmidi_in_free(C.RtMidiInPtr(ptr))
}

// InCurrentAPI reports the backend the input instance actually bound.
func InCurrentAPI(ptr unsafe.Pointer) uint32 {
	return uint32(C.rtmidi_in_get_current_api(C.RtMidiInPtr(ptr)))
}

// InCancelCallback detaches any installed callback at the native layer. The
// registry entry is released separately by the caller.
func InCancelCallback(ptr unsafe.Pointer) error {
	C.rtmidi_in_cancel_callback(C.RtMidiInPtr(ptr))
	return statusErr(ptr)
}

// InIgnoreTypes adjusts native filtering of sysex, timing and active-sensing
// messages.
func InIgnoreTypes(ptr unsafe.Pointer, sysex, timing, activeSense bool) error {
	C.rtmidi_in_ignore_types(C.RtMidiInPtr(ptr), C.bool(sysex), C.bool(timing), C.bool(activeSense))
	return statusErr(ptr)
}

// OutCreate constructs a native output instance.
func OutCreate(api uint32, clientName string) (unsafe.Pointer, error) {
	name := C.CString(clientName)
	defer C.free(unsafe.Pointer(name))
	out := C.rtmidi_out_create(nativeAPI(api), name)
	if out == nil {
		return nil, ErrNullPointer
	}
	if err := statusErr(unsafe.Pointer(out)); err != nil {
		C.rtmidi_out_free(out)
		return nil, err
	}
	return unsafe.Pointer(out), nil
}

// OutFree destroys a native output instance.
func OutFree(ptr unsafe.Pointer) {
	C.rtmidi_out_free(C.RtMidiOutPtr(ptr))
}

// OutCurrentAPI reports the backend the output instance actually bound.
func OutCurrentAPI(ptr unsafe.Pointer) uint32 {
	return uint32(C.rtmidi_out_get_current_api(C.RtMidiOutPtr(ptr)))
}

// OutSendMessage transmits msg immediately. The bytes are copied to C memory
// for the duration of the call and forwarded unmodified.
func OutSendMessage(ptr unsafe.Pointer, msg []byte) error {
	p := C.CBytes(msg)
	defer C.free(p)
	C.rtmidi_out_send_message(C.RtMidiOutPtr(ptr), (*C.uchar)(p), C.int(len(msg)))
	return statusErr(ptr)
}

// OpenPort binds the instance to the port at the given index, labelling the
// connection with name.
func OpenPort(ptr unsafe.Pointer, port uint32, name string) error {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	C.rtmidi_open_port(C.RtMidiPtr(ptr), C.uint(port), cname)
	return statusErr(ptr)
}

// OpenVirtualPort creates a virtual port other clients can connect to.
// Backends without virtual-port support report the failure through the
// status block.
func OpenVirtualPort(ptr unsafe.Pointer, name string) error {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	C.rtmidi_open_virtual_port(C.RtMidiPtr(ptr), cname)
	return statusErr(ptr)
}

// ClosePort disconnects the instance from its port.
func ClosePort(ptr unsafe.Pointer) error {
	C.rtmidi_close_port(C.RtMidiPtr(ptr))
	return statusErr(ptr)
}

// PortCount reports the number of ports visible to the instance's backend.
func PortCount(ptr unsafe.Pointer) (uint32, error) {
	n := C.rtmidi_get_port_count(C.RtMidiPtr(ptr))
	if err := statusErr(ptr); err != nil {
		return 0, err
	}
	return uint32(n), nil
}

