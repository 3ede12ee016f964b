package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robhardwick/rtmidi-go/pkg/rtmidi"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "midiprobe", cfg.ClientName)
	assert.Equal(t, "", cfg.API)
	assert.Equal(t, 100, cfg.QueueSize)
	assert.True(t, cfg.Ignore.Sysex)
	assert.True(t, cfg.Ignore.Timing)
	assert.True(t, cfg.Ignore.ActiveSensing)
	assert.False(t, cfg.Port.Virtual)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: alsa\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "alsa", cfg.API)
	assert.Equal(t, "midiprobe", cfg.ClientName)
	assert.Equal(t, 100, cfg.QueueSize)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("client_name: [\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := DefaultConfig()
	want.ClientName = "sequencer"
	want.API = "jack"
	want.QueueSize = 512
	want.Ignore.Sysex = false
	want.Port = PortConfig{Number: 2, Name: "synth", Virtual: true}

	require.NoError(t, SaveConfig(path, want))
	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveAPI(t *testing.T) {
	cases := []struct {
		name string
		api  string
		want rtmidi.API
		ok   bool
	}{
		{"empty", "", rtmidi.APIUnspecified, true},
		{"alsa", "alsa", rtmidi.APILinuxALSA, true},
		{"jack", "jack", rtmidi.APIUnixJack, true},
		{"core", "core", rtmidi.APIMacOSXCore, true},
		{"unknown", "pipewire", rtmidi.APIUnspecified, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.API = tc.api
			got, err := cfg.ResolveAPI()
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOptionsRejectsUnknownAPI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API = "fluidsynth"

	_, err := cfg.Options()
	assert.Error(t, err)
}

func TestOptionsFromDefaults(t *testing.T) {
	opts, err := DefaultConfig().Options()
	require.NoError(t, err)
	// API, client name, and queue size are all set by the defaults.
	assert.Len(t, opts, 3)
}
