//go:build linux

// Package x11 is the on-screen Linux backend. It speaks the X protocol
// directly over xgb, so no display library is linked in; window-manager
// interop (close requests, names, size hints, decorations) goes through the
// usual ICCCM/EWMH/Motif properties via xgbutil.
package x11

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/lumen-engine/lumen/platform"
)

// Options configures the X11 backend.
type Options struct {
	// Display is the X display string; empty uses $DISPLAY.
	Display string
	Logger  *slog.Logger
}

// Platform is the X11 backend.
type Platform struct {
	conn   *Connection
	logger *slog.Logger

	// windowIDs maps native X windows to engine window ids so pump events can
	// be routed. Entries are removed when we destroy a window ourselves, so a
	// DestroyNotify for it is not misread as OS-initiated.
	windowIDs map[xproto.Window]platform.WindowID
}

var _ platform.Platform = (*Platform)(nil)

// New connects to the X server and builds the backend.
func New(opts Options) (*Platform, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := NewConnection(opts.Display)
	if err != nil {
		return nil, err
	}

	return &Platform{
		conn:      conn,
		logger:    logger,
		windowIDs: make(map[xproto.Window]platform.WindowID),
	}, nil
}

func (p *Platform) Name() string        { return platform.NameLinuxX11 }
func (p *Platform) Kind() platform.Kind { return platform.KindLinuxX11 }
func (p *Platform) IsHeadless() bool    { return false }

// IsDarkMode is unknown on X11: there is no core protocol notion of a system
// theme.
func (p *Platform) IsDarkMode() (dark, known bool) {
	return false, false
}

// SupportedAttributes: core geometry and naming plus what Motif WM hints can
// express. Caption-button toggles and Windows-only notions (drop shadow,
// dialog box, system menu, initially disabled/minimized) are ignored.
func (p *Platform) SupportedAttributes() platform.SupportedAttributes {
	return platform.SupportedAttributes{
		Title:            true,
		Size:             true,
		Position:         true,
		ShowBorder:       true,
		ShowTitleBar:     true,
		Resizable:        true,
		InitiallyVisible: true,
	}
}

// CreateWindow creates and configures a native X window for id.
func (p *Platform) CreateWindow(attrs platform.Attributes, id platform.WindowID) (platform.Window, error) {
	w, err := newWindow(p, attrs, id)
	if err != nil {
		return nil, err
	}
	p.windowIDs[w.window] = id
	return w, nil
}

// ProcessEvents drains every currently queued X event without blocking for
// new ones. WM_DELETE_WINDOW client messages become close requests;
// DestroyNotify for a window we did not destroy ourselves is routed through
// the OS-initiated destroy path.
func (p *Platform) ProcessEvents(inputs platform.LoopInputs) {
	conn := p.conn.XUtil.Conn()
	for {
		ev, xerr := conn.PollForEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			p.logger.Debug("X error during event pump", "error", xerr)
			continue
		}

		switch e := ev.(type) {
		case xproto.ClientMessageEvent:
			if e.Type == p.conn.WMProtocols && e.Format == 32 &&
				xproto.Atom(e.Data.Data32[0]) == p.conn.WMDeleteWindow {
				if id, ok := p.windowIDs[e.Window]; ok {
					inputs.WindowManager.BeginClosingWindow(id)
				}
			}
		case xproto.DestroyNotifyEvent:
			if id, ok := p.windowIDs[e.Window]; ok {
				delete(p.windowIDs, e.Window)
				inputs.WindowManager.NotifyWindowDestroyed(id)
			}
		}
	}
}

// Close disconnects from the X server.
func (p *Platform) Close() error {
	p.conn.Close()
	return nil
}

// forgetWindow drops the native mapping for a window we are destroying
// ourselves.
func (p *Platform) forgetWindow(window xproto.Window) {
	delete(p.windowIDs, window)
}
