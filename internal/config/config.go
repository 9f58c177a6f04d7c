// Package config is the YAML configuration of the eye daemon.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DisplayConfig describes the panel and the bus it is on.
type DisplayConfig struct {
	// Controller is SSD1306, SSD1305 or SH1106. The periph backend only drives SSD1306.
	Controller string `yaml:"controller"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Flip       bool   `yaml:"flip"`

	// Bus is the I²C bus name as known to i2creg, empty selects the first one.
	Bus string `yaml:"bus"`

	// Addr is the 7-bit I²C address.
	Addr uint8 `yaml:"addr"`

	// Reset is the reset line GPIO name, empty for none.
	Reset string `yaml:"reset,omitempty"`
}

// SerialConfig is the serial line the host sends commands on.
type SerialConfig struct {
	// Port is the tty path, empty serves on stdin/stdout.
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// Config is the top-level configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Serial  SerialConfig  `yaml:"serial"`

	// FrameDelay is the pause after every animation frame.
	FrameDelay time.Duration `yaml:"frame_delay"`

	// LogDir is where rotated log files are written.
	LogDir string `yaml:"log_dir"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Controller: "SSD1306",
			Width:      128,
			Height:     64,
			Addr:       0x3c,
		},
		Serial: SerialConfig{
			Baud: 115200,
		},
		FrameDelay: time.Millisecond,
		LogDir:     "/var/log/oled-eyes",
	}
}

// Normalize fills in zero values with defaults.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Display.Controller == "" {
		c.Display.Controller = d.Display.Controller
	}
	if c.Display.Width <= 0 {
		c.Display.Width = d.Display.Width
	}
	if c.Display.Height <= 0 {
		c.Display.Height = d.Display.Height
	}
	if c.Display.Addr == 0 {
		c.Display.Addr = d.Display.Addr
	}
	if c.Serial.Baud <= 0 {
		c.Serial.Baud = d.Serial.Baud
	}
	if c.FrameDelay < 0 {
		c.FrameDelay = 0
	}
	if c.LogDir == "" {
		c.LogDir = d.LogDir
	}
}

// ErrNotSaved is returned by Load, together with the defaults, when the configuration file
// did not exist and could not be created.
var ErrNotSaved = errors.New("config: defaults not saved")

// Load reads the configuration at path. A missing file is created with the defaults; if
// that fails the defaults are still returned, with an error wrapping ErrNotSaved.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err = Save(path, cfg); err != nil {
				return cfg, fmt.Errorf("%w: %w", ErrNotSaved, err)
			}
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
