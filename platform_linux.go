//go:build linux

package lumen

import (
	"log/slog"

	"github.com/lumen-engine/lumen/internal/headless"
	"github.com/lumen-engine/lumen/internal/x11"
	"github.com/lumen-engine/lumen/platform"
)

// defaultPlatform probes X11 first and falls back to a headless backend when
// no display is reachable.
func defaultPlatform(display string, logger *slog.Logger) (platform.Platform, error) {
	p, err := x11.New(x11.Options{Display: display, Logger: logger})
	if err == nil {
		return p, nil
	}
	logger.Warn("X11 unavailable, falling back to headless backend", "error", err)
	return headless.New(headless.Options{Logger: logger}), nil
}
