//go:build cgo && !rtmidi30

package bindings

/*
#include <rtmidi_c.h>

extern void goMIDIInCallback(double ts, unsigned char *msg, size_t msgsz, void *arg);

static inline void midiInCallback(double ts, const unsigned char *msg, size_t msgsz, void *arg) {
	goMIDIInCallback(ts, (unsigned char *)msg, msgsz, arg);
}

static inline void cgoSetCallback(RtMidiInPtr in, void *arg) {
	rtmidi_in_set_callback(in, midiInCallback, arg);
}
*/
import "C"

import "unsafe"

// Generation reports the RtMidi ABI generation this binary targets.
func Generation() string { return "5.x+" }

// nativeAPI maps a shared API value to the RTMIDI_API enum constant. Values
// outside the closed set indicate a programming error in the caller.
func nativeAPI(api uint32) C.enum_RtMidiApi {
	switch api {
	case APIUnspecified:
		return C.RTMIDI_API_UNSPECIFIED
	case APIMacOSXCore:
		return C.RTMIDI_API_MACOSX_CORE
	case APILinuxALSA:
		return C.RTMIDI_API_LINUX_ALSA
	case APIUnixJack:
		return C.RTMIDI_API_UNIX_JACK
	case APIWindowsMM:
		return C.RTMIDI_API_WINDOWS_MM
	case APIDummy:
		return C.RTMIDI_API_RTMIDI_DUMMY
	}
	panic("bindings: unknown MIDI API specifier")
}

// CompiledAPIs returns the API values compiled into the linked library.
func CompiledAPIs() []uint32 {
	n := C.rtmidi_get_compiled_api(nil, 0)
	if n <= 0 {
		return nil
	}
	apis := make([]C.enum_RtMidiApi, n)
	C.rtmidi_get_compiled_api(&apis[0], C.uint(n))
	out := make([]uint32, n)
	for i, a := range apis {
		out[i] = uint32(a)
	}
	return out
}

// APIDisplayName returns the human-readable backend name. The native string
// is static and must not be freed.
func APIDisplayName(api uint32) string {
	return C.GoString(C.rtmidi_api_display_name(nativeAPI(api)))
}

// PortName reports the display name of the port at the given index, using the
// two-call length protocol. An out-of-range index comes back as an empty name
// with the status block still ok.
func PortName(ptr unsafe.Pointer, port uint32) (string, error) {
	var n C.int
	C.rtmidi_get_port_name(C.RtMidiPtr(ptr), C.uint(port), nil, &n)
	if err := statusErr(ptr); err != nil {
		return "", err
	}
	if n < 1 {
		return "", nil
	}
	buf := make([]C.char, int(n))
	C.rtmidi_get_port_name(C.RtMidiPtr(ptr), C.uint(port), &buf[0], &n)
	if err := statusErr(ptr); err != nil {
		return "", err
	}
	return C.GoString(&buf[0]), nil
}

//export goMIDIInCallback
func goMIDIInCallback(ts C.double, msg *C.uchar, msgsz C.size_t, arg unsafe.Pointer) {
	Dispatch(uintptr(arg), float64(ts), C.GoBytes(unsafe.Pointer(msg), C.int(msgsz)))
}

// InSetCallback installs the trampoline on the input instance with id as the
// user-data context. The id must come from RegisterCallback.
func InSetCallback(ptr unsafe.Pointer, id uintptr) error {
	C.cgoSetCallback(C.RtMidiInPtr(ptr), unsafe.Pointer(id))
	return statusErr(ptr)
}

// InMessage polls the input queue into buf, returning the delta timestamp and
// the number of message bytes copied. A pending message larger than buf is
// dropped: the native layer reports its size without copying it.
func InMessage(ptr unsafe.Pointer, buf []byte) (float64, int, error) {
	size := C.size_t(len(buf))
	ts := C.rtmidi_in_get_message(C.RtMidiInPtr(ptr), (*C.uchar)(unsafe.Pointer(&buf[0])), &size)
	if err := statusErr(ptr); err != nil {
		return 0, 0, err
	}
	n := int(size)
	if n > len(buf) {
		n = 0
	}
	return float64(ts), n, nil
}
