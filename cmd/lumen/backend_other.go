//go:build !linux

package main

import (
	"fmt"
	"log/slog"

	"github.com/lumen-engine/lumen"
	"github.com/lumen-engine/lumen/internal/config"
	"github.com/lumen-engine/lumen/internal/headless"
)

// newEngine builds an engine for the configured backend. Only headless is
// available off Linux.
func newEngine(cfg *config.Config, logger *slog.Logger) (*lumen.Engine, error) {
	if cfg.Backend == config.BackendX11 {
		return nil, fmt.Errorf("backend %q is not available on this platform", cfg.Backend)
	}

	return lumen.New(lumen.Options{
		Platform:       headless.New(headless.Options{Logger: logger}),
		Logger:         logger,
		StallWarnTicks: cfg.StallWarnTicks,
	})
}
