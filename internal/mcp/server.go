// Package mcp exposes a running engine over the Model Context Protocol so an
// MCP client can inspect platform capabilities and drive window lifecycle.
//
// The engine is thread-affine, so tool handlers never touch it directly:
// every handler enqueues a closure that the tick thread executes between
// event pumps via Drain, and blocks until it ran.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lumen-engine/lumen"
)

const (
	ServerName    = "lumen"
	ServerVersion = "0.1.0"

	// dispatchTimeout bounds how long a tool call waits for the tick thread.
	// A run loop that stopped draining fails tool calls instead of hanging
	// the MCP client.
	dispatchTimeout = 5 * time.Second
)

// Server is the MCP server for engine inspection and control.
type Server struct {
	mcpServer *mcpsdk.Server
	engine    *lumen.Engine
	logger    *slog.Logger
	commands  chan func()
}

// NewServer creates an MCP server around a running engine.
func NewServer(engine *lumen.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		engine:   engine,
		logger:   logger,
		commands: make(chan func(), 16),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "engine_status",
		Description: "Report the engine's platform (name, kind, headless, dark mode, supported window attributes) and current window counts.",
	}, s.handleEngineStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List every alive window with its id and lifecycle state (active or dying).",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "create_window",
		Description: "Create a native window. Attributes the backend does not support are accepted and ignored. Returns the new window id.",
	}, s.handleCreateWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Request a graceful close for a window by id. The window finishes closing on a later tick once nothing references it; a no-op for ids that are not active.",
	}, s.handleCloseWindow)
}

// Run serves MCP on stdio, blocking until ctx is done or the transport
// closes.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Drain executes every queued tool command. Must be called from the thread
// that owns the engine, once per tick.
func (s *Server) Drain() {
	for {
		select {
		case fn := <-s.commands:
			fn()
		default:
			return
		}
	}
}

// dispatch runs fn on the tick thread and waits for it to finish.
func (s *Server) dispatch(ctx context.Context, fn func()) error {
	ctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()

	done := make(chan struct{})
	wrapped := func() {
		fn()
		close(done)
	}

	select {
	case s.commands <- wrapped:
	case <-ctx.Done():
		return fmt.Errorf("engine tick loop is not accepting commands: %w", ctx.Err())
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("engine tick loop did not run command: %w", ctx.Err())
	}
}
