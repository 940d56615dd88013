//go:build linux

package main

import (
	"log/slog"

	"github.com/lumen-engine/lumen"
	"github.com/lumen-engine/lumen/internal/config"
	"github.com/lumen-engine/lumen/internal/headless"
	"github.com/lumen-engine/lumen/internal/x11"
)

// newEngine builds an engine for the configured backend. "auto" lets the
// engine probe X11 and fall back to headless.
func newEngine(cfg *config.Config, logger *slog.Logger) (*lumen.Engine, error) {
	opts := lumen.Options{
		Display:        cfg.Display,
		Logger:         logger,
		StallWarnTicks: cfg.StallWarnTicks,
	}

	switch cfg.Backend {
	case config.BackendHeadless:
		opts.Platform = headless.New(headless.Options{Logger: logger})
	case config.BackendX11:
		p, err := x11.New(x11.Options{Display: cfg.Display, Logger: logger})
		if err != nil {
			return nil, err
		}
		opts.Platform = p
	}

	return lumen.New(opts)
}
