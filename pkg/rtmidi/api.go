package rtmidi

import (
	"fmt"

	"github.com/robhardwick/rtmidi-go/internal/bindings"
)

// API identifies one of the MIDI backends RtMidi can be compiled against.
// The zero value, APIUnspecified, lets the native library pick the first
// working backend for the platform.
type API uint32

const (
	// APIUnspecified lets the native library search for a working backend.
	APIUnspecified API = iota
	// APIMacOSXCore is the CoreMIDI backend on macOS.
	APIMacOSXCore
	// APILinuxALSA is the ALSA sequencer backend on Linux.
	APILinuxALSA
	// APIUnixJack is the JACK backend.
	APIUnixJack
	// APIWindowsMM is the Windows Multimedia backend.
	APIWindowsMM
	// APIDummy is the compiled-in no-op backend.
	APIDummy
)

// String returns the configuration-style backend name, matching the names
// the native library uses.
func (a API) String() string {
	switch a {
	case APIUnspecified:
		return "unspecified"
	case APIMacOSXCore:
		return "core"
	case APILinuxALSA:
		return "alsa"
	case APIUnixJack:
		return "jack"
	case APIWindowsMM:
		return "winmm"
	case APIDummy:
		return "dummy"
	}
	return fmt.Sprintf("api(%d)", uint32(a))
}

// DisplayName returns the human-readable backend name from the native
// library, for example "ALSA". Libraries from the 3.x generation lack the
// lookup and yield "".
func (a API) DisplayName() string {
	return bindings.APIDisplayName(uint32(a))
}

// ParseAPI maps a configuration-style name, as reported by String, back to
// its specifier. The empty string parses as APIUnspecified.
func ParseAPI(s string) (API, error) {
	switch s {
	case "", "unspecified":
		return APIUnspecified, nil
	case "core":
		return APIMacOSXCore, nil
	case "alsa":
		return APILinuxALSA, nil
	case "jack":
		return APIUnixJack, nil
	case "winmm":
		return APIWindowsMM, nil
	case "dummy":
		return APIDummy, nil
	}
	return APIUnspecified, fmt.Errorf("rtmidi: unknown API name %q", s)
}

// CompiledAPIs reports the backends compiled into the linked native library,
// in the library's own priority order. Non-cgo builds report none, and so do
// libraries from the 3.x generation.
func CompiledAPIs() []API {
	raw := bindings.CompiledAPIs()
	apis := make([]API, 0, len(raw))
	for _, v := range raw {
		apis = append(apis, toAPI(v))
	}
	return apis
}

// toAPI converts a native enum value. A value outside the closed set means
// the linked library and these bindings disagree about the ABI, which cannot
// be handled at runtime.
func toAPI(v uint32) API {
	if v > uint32(APIDummy) {
		panic(fmt.Sprintf("rtmidi: unknown native API value %d", v))
	}
	return API(v)
}
