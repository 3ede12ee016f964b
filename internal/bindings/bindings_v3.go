//go:build cgo && rtmidi30

package bindings

/*
#include <stdlib.h>
#include <rtmidi_c.h>

extern void goMIDIInCallback(double ts, unsigned char *msg, void *arg);

static inline void midiInCallback(double ts, const unsigned char *msg, void *arg) {
	goMIDIInCallback(ts, (unsigned char *)msg, arg);
}

static inline void cgoSetCallback(RtMidiInPtr in, void *arg) {
	rtmidi_in_set_callback(in, midiInCallback, arg);
}
*/
import "C"

import "unsafe"

// v3CallbackBytes is the message length the 3.x callback implies: the ABI
// carries no size argument and delivers plain three-byte channel messages.
const v3CallbackBytes = 3

// Generation reports the RtMidi ABI generation this binary targets.
func Generation() string { return "3.x" }

// nativeAPI maps a shared API value to the 3.x enum constant. Values outside
// the closed set indicate a programming error in the caller.
func nativeAPI(api uint32) C.enum_RtMidiApi {
	switch api {
	case APIUnspecified:
		return C.RT_MIDI_API_UNSPECIFIED
	case APIMacOSXCore:
		return C.RT_MIDI_API_MACOSX_CORE
	case APILinuxALSA:
		return C.RT_MIDI_API_LINUX_ALSA
	case APIUnixJack:
		return C.RT_MIDI_API_UNIX_JACK
	case APIWindowsMM:
		return C.RT_MIDI_API_WINDOWS_MM
	case APIDummy:
		return C.RT_MIDI_API_RTMIDI_DUMMY
	}
	panic("bindings: unknown MIDI API specifier")
}

// CompiledAPIs degrades to nil: the 3.x enumeration call hands out a pointer
// it owns, and the ownership rules changed between patch releases. Callers
// fall back to probing with APIUnspecified.
func CompiledAPIs() []uint32 { return nil }

// APIDisplayName degrades to an empty name: the 3.x generation has no
// display-name lookup.
func APIDisplayName(uint32) string { return "" }

// PortName reports the display name of the port at the given index. The
// native string is strdup'd, so the success path frees it here and nowhere
// else. A null pointer alongside an ok status carries no message to read and
// is reported as its own failure.
func PortName(ptr unsafe.Pointer, port uint32) (string, error) {
	p := C.rtmidi_get_port_name(C.RtMidiPtr(ptr), C.uint(port))
	if err := statusErr(ptr); err != nil {
		return "", err
	}
	if p == nil {
		return "", ErrNullPointer
	}
	name := C.GoString(p)
	C.free(unsafe.Pointer(p))
	return name, nil
}

//export goMIDIInCallback
func goMIDIInCallback(ts C.double, msg *C.uchar, arg unsafe.Pointer) {
	Dispatch(uintptr(arg), float64(ts), C.GoBytes(unsafe.Pointer(msg), v3CallbackBytes))
}

// InSetCallback installs the trampoline on the input instance with id as the
// user-data context. The id must come from RegisterCallback.
func InSetCallback(ptr unsafe.Pointer, id uintptr) error {
	C.cgoSetCallback(C.RtMidiInPtr(ptr), unsafe.Pointer(id))
	return statusErr(ptr)
}

// InMessage polls the input queue into buf, returning the delta timestamp and
// the number of message bytes copied. The 3.x call takes the buffer through a
// double pointer and performs no bounds check of its own, so buf must be
// large enough for any queued message.
func InMessage(ptr unsafe.Pointer, buf []byte) (float64, int, error) {
	p := (*C.uchar)(unsafe.Pointer(&buf[0]))
	size := C.size_t(len(buf))
	ts := C.rtmidi_in_get_message(C.RtMidiInPtr(ptr), &p, &size)
	if err := statusErr(ptr); err != nil {
		return 0, 0, err
	}
	n := int(size)
	if n > len(buf) {
		n = 0
	}
	return float64(ts), n, nil
}
