package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/lumen-engine/lumen"
	"github.com/lumen-engine/lumen/internal/config"
	mcpserver "github.com/lumen-engine/lumen/internal/mcp"
)

// newLogger builds the CLI logger: text on a terminal, JSON otherwise, so
// piped logs stay machine-readable.
func newLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func loadRunConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load()
}

func runRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "path to config file (default: ~/.config/lumen/config.yaml)")
	backend := fs.String("backend", "", "backend override: auto, x11, or headless")
	title := fs.String("title", "", "window title override")
	withMCP := fs.Bool("mcp", false, "serve MCP on stdio alongside the run loop")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lumen run [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open a window and drive the engine loop until every window is closed")
		fmt.Fprintln(os.Stderr, "or the platform requests exit.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadRunConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *backend != "" {
		cfg.Backend = *backend
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}
	if *title != "" {
		cfg.Window.Title = *title
	}

	level, _ := cfg.LogLevel()
	logger := newLogger(level)

	eng, err := newEngine(cfg, logger)
	if err != nil {
		logger.Error("engine startup failed", "error", err)
		return 1
	}
	defer eng.Close()

	var srv *mcpserver.Server
	if *withMCP {
		srv = mcpserver.NewServer(eng, logger)
		go func() {
			if err := srv.Run(contextForSignals()); err != nil {
				logger.Error("MCP server stopped", "error", err)
			}
		}()
	}

	return runLoop(eng, cfg, srv, logger)
}

// runLoop drives one tick per interval until the engine reports exit or no
// window is left alive.
func runLoop(eng *lumen.Engine, cfg *config.Config, srv *mcpserver.Server, logger *slog.Logger) int {
	id, _, err := eng.CreateWindow(cfg.Attributes())
	if err != nil {
		logger.Error("window creation failed", "error", err)
		return 1
	}
	logger.Info("window opened", "id", id, "title", cfg.Window.Title)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			logger.Info("interrupt received, shutting down")
			eng.ExitSignal().RequestExit()
		case <-ticker.C:
		}

		if srv != nil {
			srv.Drain()
		}

		state := eng.ProcessEvents()
		switch state.Status {
		case lumen.Running:
		case lumen.ExitSuccess:
			logger.Info("exit requested")
			return 0
		default:
			logger.Error("engine exited with failure", "status", state.Status.String())
			return 1
		}

		if active, dying := eng.WindowManager().Counts(); active == 0 && dying == 0 {
			logger.Info("all windows closed")
			return 0
		}
	}
}
