// Package config loads the engine configuration for the lumen CLI: backend
// selection, default window attributes, logging, and loop tuning.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lumen-engine/lumen/platform"
)

// Backend selection values.
const (
	BackendAuto     = "auto"
	BackendX11      = "x11"
	BackendHeadless = "headless"
)

// Config is the effective engine configuration.
type Config struct {
	// Backend selects the platform backend: auto, x11, or headless.
	Backend string `yaml:"backend"`

	// Display is the X display string; empty uses $DISPLAY.
	Display string `yaml:"display,omitempty"`

	// TickRate is how many engine ticks per second the run loop drives.
	TickRate int `yaml:"tick_rate"`

	// StallWarnTicks is how many reconcile passes a dying window may stay
	// pinned before a warning is logged. 0 keeps the engine default.
	StallWarnTicks int `yaml:"stall_warn_ticks"`

	Log    Logging       `yaml:"log"`
	Window WindowDefault `yaml:"window"`
}

// Logging configures slog output.
type Logging struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// WindowDefault is the window the run loop opens at startup. Boolean toggles
// are pointers so "unset" falls back to the engine defaults rather than to
// the zero value.
type WindowDefault struct {
	Title  string `yaml:"title"`
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
	X      *int32 `yaml:"x,omitempty"`
	Y      *int32 `yaml:"y,omitempty"`

	Resizable    *bool `yaml:"resizable,omitempty"`
	ShowBorder   *bool `yaml:"show_border,omitempty"`
	ShowTitleBar *bool `yaml:"show_title_bar,omitempty"`
	Visible      *bool `yaml:"visible,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Backend:  BackendAuto,
		TickRate: 60,
		Log:      Logging{Level: "info"},
		Window: WindowDefault{
			Title:  "lumen",
			Width:  800,
			Height: 600,
		},
	}
}

// Validate checks the configuration for values the engine cannot honor.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendAuto, BackendX11, BackendHeadless:
	default:
		return fmt.Errorf("invalid backend %q (want %s, %s, or %s)",
			c.Backend, BackendAuto, BackendX11, BackendHeadless)
	}

	if c.TickRate <= 0 || c.TickRate > 1000 {
		return fmt.Errorf("invalid tick_rate %d (want 1-1000)", c.TickRate)
	}

	if c.StallWarnTicks < 0 {
		return fmt.Errorf("invalid stall_warn_ticks %d (want >= 0)", c.StallWarnTicks)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	if c.Window.Width == 0 || c.Window.Height == 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", c.Log.Level)
	}
}

// Attributes converts the window defaults into creation attributes.
func (c *Config) Attributes() platform.Attributes {
	attrs := platform.DefaultAttributes()
	attrs.Title = c.Window.Title

	size := platform.PhysicalSize(c.Window.Width, c.Window.Height)
	attrs.Size = &size

	if c.Window.X != nil && c.Window.Y != nil {
		attrs.Position = &platform.Position{X: *c.Window.X, Y: *c.Window.Y}
	}
	if c.Window.Resizable != nil {
		attrs.Resizable = *c.Window.Resizable
	}
	if c.Window.ShowBorder != nil {
		attrs.ShowBorder = *c.Window.ShowBorder
	}
	if c.Window.ShowTitleBar != nil {
		attrs.ShowTitleBar = *c.Window.ShowTitleBar
	}
	if c.Window.Visible != nil {
		attrs.InitiallyVisible = *c.Window.Visible
	}
	return attrs
}
