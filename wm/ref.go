package wm

import "github.com/lumen-engine/lumen/platform"

// Ref is a counted reference to a window. While any Ref is outstanding the
// manager will refuse to finish closing the window, so holders must call
// Release as soon as they are done with it. Release is idempotent.
//
// A Ref is only valid on the manager's thread, like everything else here.
type Ref struct {
	manager  *Manager
	id       platform.WindowID
	window   platform.Window
	released bool
}

// ID returns the window's identity.
func (r *Ref) ID() platform.WindowID {
	return r.id
}

// Window returns the underlying capability object. Valid until Release.
func (r *Ref) Window() platform.Window {
	return r.window
}

// Release drops this reference. Safe to call more than once, and safe after
// the window has already been torn down by the OS.
func (r *Ref) Release() {
	if r.released {
		return
	}
	r.released = true
	r.manager.release(r.id)
}

// Weak is the non-owning observer handle returned by CreateWindow. It does
// not keep the window alive and does not count against teardown.
type Weak struct {
	manager *Manager
	id      platform.WindowID
}

// ID returns the observed window's identity.
func (w *Weak) ID() platform.WindowID {
	return w.id
}

// Alive reports whether the observed window is still active or dying.
func (w *Weak) Alive() bool {
	return w.manager.IsWindowAlive(w.id)
}

// Upgrade obtains a counted reference to the observed window. It fails once
// the window is dying or dead, exactly like Manager.GetWindow.
func (w *Weak) Upgrade() (*Ref, bool) {
	return w.manager.GetWindow(w.id)
}
