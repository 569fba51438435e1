package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Backend selects which board implementation to drive
type Backend string

const (
	BackendSim  Backend = "sim"
	BackendGPIO Backend = "gpio"
)

// BoardConfig describes the panel wiring
type BoardConfig struct {
	Backend Backend `json:"backend"`
	Chip    string  `json:"chip,omitempty"`
	LEDs    [4]int  `json:"leds,omitempty"`
	Buttons [3]int  `json:"buttons,omitempty"`
}

// TimingConfig overrides the task delays, all in milliseconds
type TimingConfig struct {
	PollMs     int `json:"pollMs,omitempty"`
	DebounceMs int `json:"debounceMs,omitempty"`
	OffMs      int `json:"offMs,omitempty"`
	ChaseMs    int `json:"chaseMs,omitempty"`
	BinaryMs   int `json:"binaryMs,omitempty"`
}

// SurfaceConfig controls the Launchpad mirror
type SurfaceConfig struct {
	AutoConnect bool `json:"autoConnect"`
}

// UIConfig stores UI preferences
type UIConfig struct {
	Palette string `json:"palette,omitempty"` // path to a .gpl file
}

// Config is the main configuration structure
type Config struct {
	Board   BoardConfig   `json:"board"`
	Timings TimingConfig  `json:"timings,omitempty"`
	Surface SurfaceConfig `json:"surface,omitempty"`
	UI      UIConfig      `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults: the simulated board
// with stock timings and the Launchpad mirror enabled when one is plugged in.
func DefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			Backend: BackendSim,
			Chip:    "gpiochip0",
			LEDs:    [4]int{17, 27, 22, 23},
			Buttons: [3]int{5, 6, 13},
		},
		Timings: TimingConfig{
			PollMs:     10,
			DebounceMs: 20,
			OffMs:      50,
			ChaseMs:    150,
			BinaryMs:   200,
		},
		Surface: SurfaceConfig{
			AutoConnect: true,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "led-key"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
