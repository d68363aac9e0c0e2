// Package config loads the settings a wiresphere host runs with from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings of the program hosting the scene. The scene itself isn't configurable.
type Config struct {
	// Title is the title of the desktop window.
	Title string `toml:"title"`

	Viewport Viewport `toml:"viewport"`
	Output   Output   `toml:"output"`
	Log      Log      `toml:"log"`
}

// Viewport is the display size used outside of a browser, where there's no window to measure.
type Viewport struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// DevicePixelRatio is the number of device pixels per logical pixel. If it's 0, the desktop host asks the monitor.
	DevicePixelRatio float64 `toml:"device_pixel_ratio"`
}

// Output names the files the rendered scene is written to.
type Output struct {
	PNG  string `toml:"png"`  // PNG snapshot of the rendered frame; empty to skip
	GLTF string `toml:"gltf"` // Binary glTF export of the scene; empty to skip
}

// Log configures logging.
type Log struct {
	Level string `toml:"level"` // One of debug, info, warn, or error
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Title: "wiresphere",
		Viewport: Viewport{
			Width:  800,
			Height: 600,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the TOML file at path over the default configuration. If path is empty, the defaults are returned as-is.
// Unknown keys are reported as errors.
func Load(path string) (Config, error) {

	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil

}

// Decode decodes TOML data into cfg, leaving anything the data doesn't mention untouched.
func Decode(data []byte, cfg *Config) error {

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return errors.New(strictErr.String())
		}
		return err
	}

	return cfg.Validate()

}

// Validate reports whether the configuration can be used.
func (cfg Config) Validate() error {
	if cfg.Viewport.Width < 0 || cfg.Viewport.Height < 0 {
		return fmt.Errorf("viewport size can't be negative (%dx%d)", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if cfg.Viewport.DevicePixelRatio < 0 {
		return fmt.Errorf("device pixel ratio can't be negative (%g)", cfg.Viewport.DevicePixelRatio)
	}
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel turns a level name into a slog.Level. An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}
