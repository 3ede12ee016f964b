package rtmidi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robhardwick/rtmidi-go/internal/bindings"
)

func TestAPIString(t *testing.T) {
	cases := []struct {
		api  API
		want string
	}{
		{APIUnspecified, "unspecified"},
		{APIMacOSXCore, "core"},
		{APILinuxALSA, "alsa"},
		{APIUnixJack, "jack"},
		{APIWindowsMM, "winmm"},
		{APIDummy, "dummy"},
		{API(42), "api(42)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.api.String())
	}
}

func TestParseAPIRoundTrip(t *testing.T) {
	for _, api := range []API{APIUnspecified, APIMacOSXCore, APILinuxALSA, APIUnixJack, APIWindowsMM, APIDummy} {
		got, err := ParseAPI(api.String())
		require.NoError(t, err)
		assert.Equal(t, api, got)
	}
}

func TestParseAPIEmptyAndUnknown(t *testing.T) {
	got, err := ParseAPI("")
	require.NoError(t, err)
	assert.Equal(t, APIUnspecified, got)

	_, err = ParseAPI("fluidsynth")
	assert.Error(t, err)
}

func TestToAPIAcceptsClosedSet(t *testing.T) {
	for v := uint32(0); v <= uint32(APIDummy); v++ {
		assert.Equal(t, API(v), toAPI(v))
	}
}

func TestToAPIPanicsOutsideClosedSet(t *testing.T) {
	assert.Panics(t, func() { toAPI(uint32(APIDummy) + 1) })
}

// The public constants and the bindings layer share one numbering; both
// supported native generations use it.
func TestAPIValuesMatchBindings(t *testing.T) {
	assert.EqualValues(t, bindings.APIUnspecified, APIUnspecified)
	assert.EqualValues(t, bindings.APIMacOSXCore, APIMacOSXCore)
	assert.EqualValues(t, bindings.APILinuxALSA, APILinuxALSA)
	assert.EqualValues(t, bindings.APIUnixJack, APIUnixJack)
	assert.EqualValues(t, bindings.APIWindowsMM, APIWindowsMM)
	assert.EqualValues(t, bindings.APIDummy, APIDummy)
}
