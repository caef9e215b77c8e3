package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	for _, opt := range []Option{
		WithTitle("editor"),
		WithSize(1024, 768),
		WithSamples(0),
		WithVSync(false),
	} {
		opt(&cfg)
	}

	assert.Equal(t, "editor", cfg.Title)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 768, cfg.Height)
	assert.Equal(t, 0, cfg.Samples)
	assert.False(t, cfg.VSync)
}

func TestWithSize_IgnoresNonPositive(t *testing.T) {
	cfg := DefaultConfig()
	WithSize(0, -1)(&cfg)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "from file"
width = 1280
vsync = false
`), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadSettings(path))

	assert.Equal(t, "from file", cfg.Title)
	assert.Equal(t, 1280, cfg.Width)
	// Absent fields keep defaults.
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 4, cfg.Samples)
	assert.False(t, cfg.VSync)
}

func TestLoadSettings_Errors(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.LoadSettings(filepath.Join(t.TempDir(), "missing.toml")))

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = }"), 0o644))
	assert.Error(t, cfg.LoadSettings(path))
}
