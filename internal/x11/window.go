//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"

	"github.com/lumen-engine/lumen/platform"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Window is a native X window.
type Window struct {
	platform *Platform
	window   xproto.Window
	visual   xproto.Visualid
	id       platform.WindowID
}

var _ platform.Window = (*Window)(nil)

func newWindow(p *Platform, attrs platform.Attributes, id platform.WindowID) (*Window, error) {
	xu := p.conn.XUtil
	conn := xu.Conn()
	screen := xu.Screen()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate X window id: %w", err)
	}

	var x, y int16
	if attrs.Position != nil {
		x = int16(attrs.Position.X)
		y = int16(attrs.Position.Y)
	}

	// Core X has no output scaling; logical and physical sizes coincide.
	width, height := uint16(defaultWidth), uint16(defaultHeight)
	if attrs.Size != nil {
		width = uint16(attrs.Size.Width)
		height = uint16(attrs.Size.Height)
	}

	err = xproto.CreateWindowChecked(conn,
		screen.RootDepth, wid, p.conn.Root,
		x, y, width, height, 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskStructureNotify}).Check()
	if err != nil {
		return nil, fmt.Errorf("failed to create X window: %w", err)
	}

	w := &Window{platform: p, window: wid, visual: screen.RootVisual, id: id}

	if err := w.configure(attrs); err != nil {
		// Never hand back a partially constructed window.
		_ = xproto.DestroyWindowChecked(conn, wid).Check()
		return nil, err
	}

	if attrs.InitiallyVisible {
		if err := xproto.MapWindowChecked(conn, wid).Check(); err != nil {
			_ = xproto.DestroyWindowChecked(conn, wid).Check()
			return nil, fmt.Errorf("failed to map X window: %w", err)
		}
	}

	return w, nil
}

// configure applies title, WM protocols, size hints, and decorations.
func (w *Window) configure(attrs platform.Attributes) error {
	xu := w.platform.conn.XUtil
	title := attrs.TitleOrDefault()

	if err := ewmh.WmNameSet(xu, w.window, title); err != nil {
		return fmt.Errorf("failed to set window name: %w", err)
	}
	// Legacy WMs read the ICCCM name.
	if err := icccm.WmNameSet(xu, w.window, title); err != nil {
		return fmt.Errorf("failed to set legacy window name: %w", err)
	}

	// Close requests arrive as WM_DELETE_WINDOW client messages instead of
	// the server killing our connection.
	if err := icccm.WmProtocolsSet(xu, w.window, []string{"WM_DELETE_WINDOW"}); err != nil {
		return fmt.Errorf("failed to set WM protocols: %w", err)
	}

	hints := icccm.NormalHints{}
	if attrs.Position != nil {
		hints.Flags |= icccm.SizeHintPPosition
		hints.X = int(attrs.Position.X)
		hints.Y = int(attrs.Position.Y)
	}

	width, height := uint(defaultWidth), uint(defaultHeight)
	if attrs.Size != nil {
		width = uint(attrs.Size.Width)
		height = uint(attrs.Size.Height)
	}
	hints.Flags |= icccm.SizeHintPSize
	hints.Width = width
	hints.Height = height

	if !attrs.Resizable {
		// Equal min and max bounds pin the size.
		hints.Flags |= icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize
		hints.MinWidth = width
		hints.MaxWidth = width
		hints.MinHeight = height
		hints.MaxHeight = height
	}

	if err := icccm.WmNormalHintsSet(xu, w.window, &hints); err != nil {
		return fmt.Errorf("failed to set size hints: %w", err)
	}

	if !attrs.ShowBorder || !attrs.ShowTitleBar {
		mh := motif.Hints{Flags: motif.HintDecorations}
		if attrs.ShowBorder {
			mh.Decoration |= motif.DecorationBorder | motif.DecorationResizeH
		}
		if attrs.ShowTitleBar {
			mh.Decoration |= motif.DecorationTitle | motif.DecorationMenu
		}
		if err := motif.WmHintsSet(xu, w.window, &mh); err != nil {
			return fmt.Errorf("failed to set decoration hints: %w", err)
		}
	}

	return nil
}

func (w *Window) ID() platform.WindowID {
	return w.id
}

func (w *Window) Handle() platform.Handle {
	return platform.X11Handle{
		Window: uint32(w.window),
		Visual: uint32(w.visual),
		Screen: w.platform.conn.Screen(),
	}
}

// Destroy tears the native window down. The backend forgets the native
// mapping first so the resulting DestroyNotify is not mistaken for an
// OS-initiated destroy.
func (w *Window) Destroy() error {
	w.platform.forgetWindow(w.window)
	if err := xproto.DestroyWindowChecked(w.platform.conn.XUtil.Conn(), w.window).Check(); err != nil {
		return fmt.Errorf("failed to destroy X window: %w", err)
	}
	return nil
}
