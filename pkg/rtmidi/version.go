package rtmidi

import "github.com/robhardwick/rtmidi-go/internal/bindings"

var (
	// Version is populated at build time via ldflags.
	Version = "v0.0.0-dev"
)

// WrapperVersion returns the module's semantic version. In development it
// defaults to v0.0.0-dev.
func WrapperVersion() string {
	return Version
}

// Generation reports the RtMidi ABI generation the binary was built against:
// "5.x+" by default, "3.x" under the rtmidi30 build tag, and "" when the
// native bindings are not built.
func Generation() string {
	return bindings.Generation()
}
