// Package config holds the on-disk configuration for the midiprobe tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robhardwick/rtmidi-go/pkg/rtmidi"
)

// Config represents the midiprobe configuration
type Config struct {
	// Client name registered with the MIDI backend
	ClientName string `yaml:"client_name,omitempty"`

	// Backend to use; empty means first compiled backend
	API string `yaml:"api,omitempty"`

	// Input queue limit when polling instead of using a callback
	QueueSize int `yaml:"queue_size,omitempty"`

	// Input filtering
	Ignore IgnoreConfig `yaml:"ignore"`

	// Port selection
	Port PortConfig `yaml:"port"`
}

// IgnoreConfig selects which message classes the input discards
type IgnoreConfig struct {
	Sysex         bool `yaml:"sysex"`
	Timing        bool `yaml:"timing"`
	ActiveSensing bool `yaml:"active_sensing"`
}

// PortConfig selects the port to attach to
type PortConfig struct {
	Number  int    `yaml:"number"`
	Name    string `yaml:"name,omitempty"` // substring match, wins over number
	Virtual bool   `yaml:"virtual,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		ClientName: "midiprobe",
		QueueSize:  100,
		Ignore: IgnoreConfig{
			Sysex:         true,
			Timing:        true,
			ActiveSensing: true,
		},
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveAPI parses the configured backend name
func (c *Config) ResolveAPI() (rtmidi.API, error) {
	api, err := rtmidi.ParseAPI(c.API)
	if err != nil {
		return rtmidi.APIUnspecified, fmt.Errorf("invalid api in config: %w", err)
	}
	return api, nil
}

// Options converts the configuration into handle options
func (c *Config) Options() ([]rtmidi.Option, error) {
	api, err := c.ResolveAPI()
	if err != nil {
		return nil, err
	}

	opts := []rtmidi.Option{rtmidi.WithAPI(api)}
	if c.ClientName != "" {
		opts = append(opts, rtmidi.WithClientName(c.ClientName))
	}
	if c.QueueSize > 0 {
		opts = append(opts, rtmidi.WithQueueSizeLimit(c.QueueSize))
	}

	return opts, nil
}
