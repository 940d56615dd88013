// Package lumen is the window-lifecycle core of the lumen engine: it allocates
// window identities, delegates native window creation to a platform backend,
// tracks each window from active through dying to destroyed, and drives the
// per-tick event pump that turns native close/quit signals into engine-level
// lifecycle transitions.
//
// The engine, its platform, and its window manager are thread-affine: they
// must only be used from the single thread that owns the native event pump.
package lumen

import (
	"log/slog"

	"github.com/lumen-engine/lumen/platform"
	"github.com/lumen-engine/lumen/wm"
)

// Options configures a new Engine.
type Options struct {
	// Platform overrides backend selection. Nil picks the default for the
	// build target, falling back to headless when no display is reachable.
	Platform platform.Platform

	// Display names the X11 display to connect to. Empty uses $DISPLAY.
	// Ignored when Platform is set or the build target has no X11 backend.
	Display string

	// Logger receives structured engine logs. Nil uses slog.Default().
	Logger *slog.Logger

	// StallWarnTicks configures the window manager's stalled-close warning.
	StallWarnTicks int
}

// Engine ties one platform backend and one window manager together and drives
// them one tick at a time.
type Engine struct {
	platform platform.Platform
	windows  *wm.Manager
	exit     *ExitSignal
	logger   *slog.Logger
}

// New constructs an engine. Backend construction errors (display unreachable,
// connection refused) surface here unless a headless fallback applies.
func New(opts Options) (*Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := opts.Platform
	if p == nil {
		var err error
		p, err = defaultPlatform(opts.Display, logger)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("engine platform selected",
		"platform", p.Name(), "headless", p.IsHeadless())

	return &Engine{
		platform: p,
		windows:  wm.NewManager(wm.Options{Logger: logger, StallWarnTicks: opts.StallWarnTicks}),
		exit:     NewExitSignal(logger),
		logger:   logger,
	}, nil
}

// Platform returns the backend this engine runs on.
func (e *Engine) Platform() platform.Platform {
	return e.platform
}

// WindowManager returns the engine's window manager.
func (e *Engine) WindowManager() *wm.Manager {
	return e.windows
}

// ExitSignal returns the engine's exit signal channel. Backends receive it
// through LoopInputs; anything else that wants to request termination must be
// handed it explicitly.
func (e *Engine) ExitSignal() *ExitSignal {
	return e.exit
}

// CreateWindow creates a native window with the given attributes and returns
// its id plus a non-owning observer handle.
func (e *Engine) CreateWindow(attrs platform.Attributes) (platform.WindowID, *wm.Weak, error) {
	return e.windows.CreateWindow(attrs, e.platform)
}

// ProcessEvents runs one engine tick: pump pending native events, reconcile
// dying windows, then read and reset the exit signal. Not reentrant.
//
// The caller loops: while a window is alive and the result is Running, tick
// again; on ExitSuccess terminate cleanly; on an error status terminate with
// failure.
func (e *Engine) ProcessEvents() ExitState {
	e.platform.ProcessEvents(platform.LoopInputs{
		WindowManager: e.windows,
		ExitSignal:    e.exit,
	})

	e.windows.Reconcile()

	return e.exit.TakeExitState()
}

// Close releases the backend's native connection. The engine is unusable
// afterwards.
func (e *Engine) Close() error {
	return e.platform.Close()
}
