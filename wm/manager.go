// Package wm owns the registry of live and dying windows. It allocates window
// identities, enforces the active → dying → dead lifecycle, and tears a native
// window down only once nothing outside the manager still references it.
//
// The manager is single-threaded by contract: it must only be touched from the
// thread that drives the native event pump. Backends may call back into it
// re-entrantly from inside Platform.ProcessEvents; no state is held across
// that boundary.
package wm

import (
	"log/slog"

	"github.com/lumen-engine/lumen/platform"
)

// DefaultStallWarnTicks is how many failed teardown attempts a dying window
// survives before the manager logs a warning about it. The manager never
// force-destroys; the warning is purely diagnostic.
const DefaultStallWarnTicks = 600

type entry struct {
	window platform.Window
	// refs counts references held outside the manager. Teardown waits until
	// it reaches zero.
	refs int
	// stalledTicks counts reconcile passes this window spent dying while
	// still referenced.
	stalledTicks int
	stallWarned  bool
}

// Manager tracks every window the engine created. The registry partitions
// known ids into active and dying; an id absent from both is dead.
type Manager struct {
	logger *slog.Logger

	nextID platform.WindowID

	windows map[platform.WindowID]*entry
	active  map[platform.WindowID]struct{}
	dying   map[platform.WindowID]struct{}

	stallWarnTicks int
}

// Options configures a Manager.
type Options struct {
	Logger *slog.Logger
	// StallWarnTicks overrides DefaultStallWarnTicks; <= 0 keeps the default.
	StallWarnTicks int
}

// NewManager creates an empty window manager.
func NewManager(opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	stall := opts.StallWarnTicks
	if stall <= 0 {
		stall = DefaultStallWarnTicks
	}
	return &Manager{
		logger:         logger,
		windows:        make(map[platform.WindowID]*entry),
		active:         make(map[platform.WindowID]struct{}),
		dying:          make(map[platform.WindowID]struct{}),
		stallWarnTicks: stall,
	}
}

var _ platform.WindowLifecycle = (*Manager)(nil)

// CreateWindow allocates the next WindowID, asks p to construct the native
// window, and registers it as active. The caller receives the id and a
// non-owning observer handle; the manager keeps the only owning entry.
//
// On platform failure nothing is registered, but the id counter still
// advances: callers must not assume id density.
func (m *Manager) CreateWindow(attrs platform.Attributes, p platform.Platform) (platform.WindowID, *Weak, error) {
	id := m.nextID
	m.nextID++

	window, err := p.CreateWindow(attrs, id)
	if err != nil {
		return 0, nil, err
	}

	m.windows[id] = &entry{window: window}
	m.active[id] = struct{}{}

	m.logger.Debug("window created", "id", id, "title", attrs.TitleOrDefault())

	return id, &Weak{manager: m, id: id}, nil
}

// BeginClosingWindow transitions id from active to dying. Idempotent; calling
// it for an id that is not active (already dying, or dead) is a no-op.
func (m *Manager) BeginClosingWindow(id platform.WindowID) {
	if _, ok := m.active[id]; !ok {
		return
	}
	delete(m.active, id)
	m.dying[id] = struct{}{}
	m.logger.Debug("window closing", "id", id)
}

// TryFinishClosingWindow attempts to tear down a dying window. It returns true
// when there is nothing left to do for id: the id is not dying, or teardown
// completed. It returns false when the window is still referenced outside the
// manager, in which case the call is safe to retry on a later tick.
//
// Teardown destroys the native window as a side effect of dropping the
// manager's entry; this only ever happens once per window.
func (m *Manager) TryFinishClosingWindow(id platform.WindowID) bool {
	if _, ok := m.dying[id]; !ok {
		return true
	}

	e, ok := m.windows[id]
	if !ok {
		// Registry entry already gone; nothing left to release.
		delete(m.dying, id)
		return true
	}

	if e.refs > 0 {
		e.stalledTicks++
		if e.stalledTicks >= m.stallWarnTicks && !e.stallWarned {
			e.stallWarned = true
			m.logger.Warn("window close stalled on outside references",
				"id", id, "refs", e.refs, "ticks", e.stalledTicks)
		} else {
			m.logger.Debug("cannot finish closing window, outside references remain",
				"id", id, "refs", e.refs)
		}
		return false
	}

	delete(m.dying, id)
	delete(m.windows, id)

	if err := e.window.Destroy(); err != nil {
		m.logger.Error("native window teardown failed", "id", id, "error", err)
	} else {
		m.logger.Debug("window destroyed", "id", id)
	}

	return true
}

// NotifyWindowDestroyed handles an OS-initiated destroy: the native object is
// already gone, so the manager drops id immediately.
//
// This is the one path that bypasses the outside-reference gate. The usual
// invariant, destroy only when the manager decided to close AND no references
// remain, cannot hold when the OS destroyed the window out from under us;
// keeping the entry would leak it forever. Outstanding references observe
// Alive() == false afterwards and their Release becomes a no-op.
func (m *Manager) NotifyWindowDestroyed(id platform.WindowID) {
	e, ok := m.windows[id]
	if !ok {
		return
	}

	delete(m.active, id)
	delete(m.dying, id)
	delete(m.windows, id)

	if e.refs > 0 {
		m.logger.Warn("window destroyed by OS while still referenced",
			"id", id, "refs", e.refs)
	} else {
		m.logger.Debug("window destroyed by OS", "id", id)
	}
}

// GetWindow returns a counted reference to an active window. It returns
// ok == false for dying or unknown ids: a window on its way out cannot be
// resurrected. Querying a nonexistent id is normal during teardown races,
// never an error.
func (m *Manager) GetWindow(id platform.WindowID) (ref *Ref, ok bool) {
	if _, isActive := m.active[id]; !isActive {
		return nil, false
	}
	e := m.windows[id]
	e.refs++
	return &Ref{manager: m, id: id, window: e.window}, true
}

// IsWindowActive reports whether id is live and operable.
func (m *Manager) IsWindowActive(id platform.WindowID) bool {
	_, ok := m.active[id]
	return ok
}

// IsWindowDying reports whether a close has been requested for id but the
// native object is still resident.
func (m *Manager) IsWindowDying(id platform.WindowID) bool {
	_, ok := m.dying[id]
	return ok
}

// IsWindowAlive reports whether id is either active or dying.
func (m *Manager) IsWindowAlive(id platform.WindowID) bool {
	return m.IsWindowActive(id) || m.IsWindowDying(id)
}

// Counts returns the number of active and dying windows.
func (m *Manager) Counts() (active, dying int) {
	return len(m.active), len(m.dying)
}

// AliveWindows returns the ids of all active and dying windows, active first,
// each group in ascending id order.
func (m *Manager) AliveWindows() []platform.WindowID {
	ids := make([]platform.WindowID, 0, len(m.active)+len(m.dying))
	ids = appendSorted(ids, m.active)
	ids = appendSorted(ids, m.dying)
	return ids
}

func appendSorted(dst []platform.WindowID, set map[platform.WindowID]struct{}) []platform.WindowID {
	start := len(dst)
	for id := range set {
		dst = append(dst, id)
	}
	tail := dst[start:]
	for i := 1; i < len(tail); i++ {
		for j := i; j > 0 && tail[j] < tail[j-1]; j-- {
			tail[j], tail[j-1] = tail[j-1], tail[j]
		}
	}
	return dst
}

// Reconcile attempts to finish closing every currently dying window. Nothing
// auto-finishes a dying window; the engine calls this once per tick until each
// teardown succeeds. A window whose references never drop never finishes
// closing; safety wins over forced invalidation.
func (m *Manager) Reconcile() {
	if len(m.dying) == 0 {
		return
	}
	ids := make([]platform.WindowID, 0, len(m.dying))
	for id := range m.dying {
		ids = append(ids, id)
	}
	for _, id := range ids {
		m.TryFinishClosingWindow(id)
	}
}

// release drops one counted reference to id. No-op once the entry is gone
// (the window finished dying, or the OS destroyed it).
func (m *Manager) release(id platform.WindowID) {
	e, ok := m.windows[id]
	if !ok {
		return
	}
	if e.refs > 0 {
		e.refs--
	}
}
