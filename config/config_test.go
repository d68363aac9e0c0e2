package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "wiresphere.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 800, cfg.Viewport.Width)
	assert.Equal(t, 600, cfg.Viewport.Height)

}

func TestLoad(t *testing.T) {

	path := writeConfig(t, `
title = "Sphere"

[viewport]
width = 1024
device_pixel_ratio = 2.0

[output]
png = "sphere.png"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Sphere", cfg.Title)
	assert.Equal(t, 1024, cfg.Viewport.Width)
	assert.Equal(t, 600, cfg.Viewport.Height, "values the file doesn't mention should keep their defaults")
	assert.Equal(t, 2.0, cfg.Viewport.DevicePixelRatio)
	assert.Equal(t, "sphere.png", cfg.Output.PNG)
	assert.Empty(t, cfg.Output.GLTF)

	level, err := ParseLevel(cfg.Log.Level)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

}

func TestLoadErrors(t *testing.T) {

	tests := map[string]string{
		"unknown key":    "[viewport]\ndepth = 3\n",
		"bad syntax":     "title = \n",
		"negative size":  "[viewport]\nwidth = -1\n",
		"negative ratio": "[viewport]\ndevice_pixel_ratio = -2.0\n",
		"bad level":      "[log]\nlevel = \"loud\"\n",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, contents))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

}

func TestParseLevel(t *testing.T) {

	levels := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for name, expected := range levels {
		level, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, level, name)
	}

}
