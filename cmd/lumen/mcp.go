package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumen-engine/lumen"
	"github.com/lumen-engine/lumen/internal/headless"
	mcpserver "github.com/lumen-engine/lumen/internal/mcp"
)

func printMCPUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lumen mcp <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve    Run a headless engine controlled over MCP (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'lumen mcp <command> --help' for command-specific options.")
}

func runMCP(args []string) int {
	if len(args) == 0 {
		printMCPUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "serve":
		return runMCPServe(args[1:])
	case "help", "-h", "--help":
		printMCPUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown mcp command: %s\n\n", args[0])
		printMCPUsage(os.Stderr)
		return 2
	}
}

// runMCPServe runs a headless engine whose only driver is MCP: the tick loop
// pumps scripted events and drains tool commands, and the process exits when
// the transport closes or a signal arrives. Designed to be invoked by MCP
// clients.
func runMCPServe(args []string) int {
	fs := flag.NewFlagSet("mcp serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "path to config file (default: ~/.config/lumen/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lumen mcp serve [options]")
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

	level, _ := cfg.LogLevel()
	logger := newLogger(level)

	eng, err := lumen.New(lumen.Options{
		Platform:       headless.New(headless.Options{Logger: logger}),
		Logger:         logger,
		StallWarnTicks: cfg.StallWarnTicks,
	})
	if err != nil {
		logger.Error("engine startup failed", "error", err)
		return 1
	}
	defer eng.Close()

	srv := mcpserver.NewServer(eng, logger)

	ctx := contextForSignals()
	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Run(ctx)
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case err := <-serverDone:
			if err != nil && ctx.Err() == nil {
				logger.Error("MCP server error", "error", err)
				return 1
			}
			return 0
		case <-ticker.C:
			srv.Drain()
			state := eng.ProcessEvents()
			if state.ShouldExit() {
				if state.Status == lumen.ExitSuccess {
					return 0
				}
				return 1
			}
		}
	}
}

// contextForSignals returns a context cancelled on SIGINT/SIGTERM.
func contextForSignals() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx
}
