package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lumen-engine/lumen/platform"
)

func (s *Server) handleEngineStatus(ctx context.Context, _ *mcpsdk.CallToolRequest, _ EngineStatusInput) (*mcpsdk.CallToolResult, EngineStatusOutput, error) {
	var out EngineStatusOutput
	err := s.dispatch(ctx, func() {
		p := s.engine.Platform()
		out.Platform = p.Name()
		out.Kind = p.Kind().String()
		out.Headless = p.IsHeadless()
		if dark, known := p.IsDarkMode(); known {
			out.DarkMode = &dark
		}
		out.ActiveWindows, out.DyingWindows = s.engine.WindowManager().Counts()

		sup := p.SupportedAttributes()
		out.Supported = SupportedAttributesInfo{
			Title:              sup.Title,
			Size:               sup.Size,
			Position:           sup.Position,
			HasCloseButton:     sup.HasCloseButton,
			HasMinimizeButton:  sup.HasMinimizeButton,
			HasMaximizeButton:  sup.HasMaximizeButton,
			ShowDropShadow:     sup.ShowDropShadow,
			ShowBorder:         sup.ShowBorder,
			ShowTitleBar:       sup.ShowTitleBar,
			InitiallyDisabled:  sup.InitiallyDisabled,
			IsDialogBox:        sup.IsDialogBox,
			InitiallyMinimized: sup.InitiallyMinimized,
			Resizable:          sup.Resizable,
			HasSystemMenu:      sup.HasSystemMenu,
			InitiallyVisible:   sup.InitiallyVisible,
		}
	})
	if err != nil {
		return nil, EngineStatusOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleListWindows(ctx context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	var out ListWindowsOutput
	err := s.dispatch(ctx, func() {
		manager := s.engine.WindowManager()
		for _, id := range manager.AliveWindows() {
			state := "dying"
			if manager.IsWindowActive(id) {
				state = "active"
			}
			out.Windows = append(out.Windows, WindowInfo{ID: uint32(id), State: state})
		}
	})
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleCreateWindow(ctx context.Context, _ *mcpsdk.CallToolRequest, args CreateWindowInput) (*mcpsdk.CallToolResult, CreateWindowOutput, error) {
	attrs := platform.DefaultAttributes()
	attrs.Title = args.Title
	if args.Width > 0 && args.Height > 0 {
		size := platform.PhysicalSize(args.Width, args.Height)
		attrs.Size = &size
	}
	if args.X != nil && args.Y != nil {
		attrs.Position = &platform.Position{X: *args.X, Y: *args.Y}
	}
	if args.Resizable != nil {
		attrs.Resizable = *args.Resizable
	}
	if args.Visible != nil {
		attrs.InitiallyVisible = *args.Visible
	}

	var out CreateWindowOutput
	var createErr error
	err := s.dispatch(ctx, func() {
		id, _, err := s.engine.CreateWindow(attrs)
		if err != nil {
			createErr = err
			return
		}
		out.ID = uint32(id)
		s.logger.Info("window created via MCP", "id", id)
	})
	if err != nil {
		return nil, CreateWindowOutput{}, err
	}
	if createErr != nil {
		return nil, CreateWindowOutput{}, createErr
	}
	return nil, out, nil
}

func (s *Server) handleCloseWindow(ctx context.Context, _ *mcpsdk.CallToolRequest, args CloseWindowInput) (*mcpsdk.CallToolResult, CloseWindowOutput, error) {
	out := CloseWindowOutput{ID: args.ID}
	err := s.dispatch(ctx, func() {
		manager := s.engine.WindowManager()
		id := platform.WindowID(args.ID)
		manager.BeginClosingWindow(id)

		switch {
		case manager.IsWindowActive(id):
			out.State = "active"
		case manager.IsWindowDying(id):
			out.State = "dying"
		default:
			out.State = "dead"
		}
	})
	if err != nil {
		return nil, CloseWindowOutput{}, err
	}
	return nil, out, nil
}
