//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"
)

// Connection manages the X11 connection and the core X resources the backend
// needs: the root window and the interned window-manager protocol atoms.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	WMProtocols    xproto.Atom
	WMDeleteWindow xproto.Atom
}

// NewConnection connects to the X server. display is an X display string like
// ":0"; empty uses $DISPLAY.
func NewConnection(display string) (*Connection, error) {
	var xu *xgbutil.XUtil
	var err error
	if display == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(display)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}

	wmProtocols, err := xprop.Atm(xu, "WM_PROTOCOLS")
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("failed to intern WM_PROTOCOLS: %w", err)
	}
	wmDeleteWindow, err := xprop.Atm(xu, "WM_DELETE_WINDOW")
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("failed to intern WM_DELETE_WINDOW: %w", err)
	}

	return &Connection{
		XUtil:          xu,
		Root:           xu.RootWin(),
		WMProtocols:    wmProtocols,
		WMDeleteWindow: wmDeleteWindow,
	}, nil
}

// Screen returns the screen number of the connection.
func (c *Connection) Screen() int {
	return c.XUtil.Conn().DefaultScreen
}

// Close disconnects from the X server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
