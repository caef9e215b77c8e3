package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/curvekit"
)

// Config describes the window and context a demo asks for.
type Config struct {
	Title   string
	Width   int
	Height  int
	Samples int
	VSync   bool
}

// Option configures a Config during Run.
type Option func(*Config)

// DefaultConfig matches the original demos: 800x600, 4x MSAA.
func DefaultConfig() Config {
	return Config{
		Title:   "curvekit",
		Width:   800,
		Height:  600,
		Samples: 4,
		VSync:   true,
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithSize sets the initial window size. Non-positive values keep the
// defaults.
func WithSize(width, height int) Option {
	return func(c *Config) {
		if width > 0 {
			c.Width = width
		}
		if height > 0 {
			c.Height = height
		}
	}
}

// WithSamples sets the multisample count (0 disables MSAA).
func WithSamples(n int) Option {
	return func(c *Config) { c.Samples = n }
}

// WithVSync toggles swap-interval synchronization.
func WithVSync(enabled bool) Option {
	return func(c *Config) { c.VSync = enabled }
}

// WithSettingsFile overlays a TOML settings file onto the config. An
// empty path is a no-op; an unreadable or malformed file is logged and
// ignored so a stale settings file never blocks startup.
func WithSettingsFile(path string) Option {
	return func(c *Config) {
		if path == "" {
			return
		}
		if err := c.LoadSettings(path); err != nil {
			curvekit.Logger().Warn("settings file ignored", "error", err)
		}
	}
}

// fileSettings is the TOML settings-file schema. Pointer fields
// distinguish "absent" from zero values.
type fileSettings struct {
	Title   *string `toml:"title"`
	Width   *int    `toml:"width"`
	Height  *int    `toml:"height"`
	Samples *int    `toml:"samples"`
	VSync   *bool   `toml:"vsync"`
}

// LoadSettings overlays settings from a TOML file onto the config. Fields
// absent from the file keep their current values.
func (c *Config) LoadSettings(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("app: settings: %w", err)
	}
	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return fmt.Errorf("app: settings %s: %w", path, err)
	}
	if fs.Title != nil {
		c.Title = *fs.Title
	}
	if fs.Width != nil && *fs.Width > 0 {
		c.Width = *fs.Width
	}
	if fs.Height != nil && *fs.Height > 0 {
		c.Height = *fs.Height
	}
	if fs.Samples != nil && *fs.Samples >= 0 {
		c.Samples = *fs.Samples
	}
	if fs.VSync != nil {
		c.VSync = *fs.VSync
	}
	return nil
}
