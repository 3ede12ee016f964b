package rtmidi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robhardwick/rtmidi-go/internal/bindings"
)

func TestRemapError(t *testing.T) {
	wrapped := fmt.Errorf("open: %w", bindings.ErrNotBuilt)
	passthrough := errors.New("unrelated")

	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"not built", bindings.ErrNotBuilt, ErrNotBuilt},
		{"not built wrapped", wrapped, ErrNotBuilt},
		{"null pointer", bindings.ErrNullPointer, ErrNullPointer},
		{"passthrough", passthrough, passthrough},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, remapError(tc.in))
		})
	}
}

func TestRemapNativeError(t *testing.T) {
	native := &bindings.NativeError{Msg: "MidiInAlsa: error creating ALSA sequencer client object."}

	got := remapError(native)

	var devErr *Error
	require.True(t, errors.As(got, &devErr))
	assert.Equal(t, native.Msg, devErr.Message)
	assert.Equal(t, native.Msg, got.Error())
}

// Every sentinel must stay distinguishable under errors.Is so callers can
// branch on the failure mode.
func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotBuilt, ErrClosed, ErrEmbeddedNull, ErrNullPointer, ErrInvalidUTF8, ErrNilCallback}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				assert.ErrorIs(t, a, b)
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
