//go:build !linux

package lumen

import (
	"log/slog"

	"github.com/lumen-engine/lumen/internal/headless"
	"github.com/lumen-engine/lumen/platform"
)

// defaultPlatform on targets without an on-screen backend is always headless.
func defaultPlatform(_ string, logger *slog.Logger) (platform.Platform, error) {
	return headless.New(headless.Options{Logger: logger}), nil
}
