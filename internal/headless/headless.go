// Package headless is the display-less backend: windows exist only as
// bookkeeping and no on-screen surface is ever created. It is the default on
// targets without a native backend, the fallback when no display is
// reachable, and the test double for everything above the platform contract.
//
// Events are scripted: tests and harnesses enqueue synthetic close, destroy,
// quit, and fatal notifications, and the next ProcessEvents drains them in
// order, exactly like a native pump draining its queue.
package headless

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/lumen-engine/lumen/platform"
)

type eventKind int

const (
	eventCloseRequested eventKind = iota
	eventDestroyed
	eventQuit
	eventFatal
)

type event struct {
	kind eventKind
	id   platform.WindowID
	err  error
}

// Options configures a headless platform.
type Options struct {
	Logger *slog.Logger
	// Name labels a custom headless variant. Empty keeps the standard
	// headless kind for the build target.
	Name string
}

// Platform is the headless backend.
type Platform struct {
	logger *slog.Logger
	name   string
	kind   platform.Kind

	windows map[platform.WindowID]*Window
	queue   []event

	failNextCreate error
	closed         bool
}

var _ platform.Platform = (*Platform)(nil)

// New creates a headless platform for the current build target.
func New(opts Options) *Platform {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	name := platform.NameLinuxHeadless
	kind := platform.KindLinuxHeadless
	if runtime.GOOS == "windows" {
		name = platform.NameWindowsHeadless
		kind = platform.KindWindowsHeadless
	}
	if opts.Name != "" {
		name = opts.Name
		kind = platform.KindCustom
	}

	return &Platform{
		logger:  logger,
		name:    name,
		kind:    kind,
		windows: make(map[platform.WindowID]*Window),
	}
}

func (p *Platform) Name() string        { return p.name }
func (p *Platform) Kind() platform.Kind { return p.kind }
func (p *Platform) IsHeadless() bool    { return true }

// IsDarkMode is unknown for a backend with no system theme to query.
func (p *Platform) IsDarkMode() (dark, known bool) {
	return false, false
}

// SupportedAttributes reports everything as honored: with no native surface
// there is nothing an attribute could fail to apply to, and recording them
// all keeps the backend useful as a test double.
func (p *Platform) SupportedAttributes() platform.SupportedAttributes {
	return platform.SupportedAttributes{
		Title:              true,
		Size:               true,
		Position:           true,
		HasCloseButton:     true,
		HasMinimizeButton:  true,
		HasMaximizeButton:  true,
		ShowDropShadow:     true,
		ShowBorder:         true,
		ShowTitleBar:       true,
		InitiallyDisabled:  true,
		IsDialogBox:        true,
		InitiallyMinimized: true,
		Resizable:          true,
		HasSystemMenu:      true,
		InitiallyVisible:   true,
	}
}

// CreateWindow records a window. FailNextCreate can force the next call to
// fail for error-path testing.
func (p *Platform) CreateWindow(attrs platform.Attributes, id platform.WindowID) (platform.Window, error) {
	if p.closed {
		return nil, fmt.Errorf("headless: platform is closed")
	}
	if err := p.failNextCreate; err != nil {
		p.failNextCreate = nil
		return nil, err
	}

	w := &Window{platform: p, id: id, attrs: attrs}
	p.windows[id] = w
	return w, nil
}

// ProcessEvents drains the scripted queue, dispatching into inputs. Events
// pushed during the drain (there is no native source that could do that, but
// re-entrant pushes are legal) are handled on the next tick.
func (p *Platform) ProcessEvents(inputs platform.LoopInputs) {
	pending := p.queue
	p.queue = nil

	for _, ev := range pending {
		switch ev.kind {
		case eventCloseRequested:
			inputs.WindowManager.BeginClosingWindow(ev.id)
		case eventDestroyed:
			if w, ok := p.windows[ev.id]; ok {
				w.destroyed = true
				delete(p.windows, ev.id)
			}
			inputs.WindowManager.NotifyWindowDestroyed(ev.id)
		case eventQuit:
			inputs.ExitSignal.RequestExit()
		case eventFatal:
			inputs.ExitSignal.RequestExitError(ev.err)
		}
	}
}

// Close marks the platform closed; window creation fails afterwards.
func (p *Platform) Close() error {
	p.closed = true
	return nil
}

// PushCloseRequest scripts a native close request (the headless stand-in for
// WM_DELETE_WINDOW / WM_CLOSE) for id.
func (p *Platform) PushCloseRequest(id platform.WindowID) {
	p.queue = append(p.queue, event{kind: eventCloseRequested, id: id})
}

// PushDestroyNotify scripts an OS-initiated destroy for id: the native window
// is gone before the manager asked for it.
func (p *Platform) PushDestroyNotify(id platform.WindowID) {
	p.queue = append(p.queue, event{kind: eventDestroyed, id: id})
}

// PushQuit scripts a native quit signal.
func (p *Platform) PushQuit() {
	p.queue = append(p.queue, event{kind: eventQuit})
}

// PushFatal scripts a fatal native signal.
func (p *Platform) PushFatal(err error) {
	p.queue = append(p.queue, event{kind: eventFatal, err: err})
}

// FailNextCreate makes the next CreateWindow return err.
func (p *Platform) FailNextCreate(err error) {
	p.failNextCreate = err
}

// LiveWindows returns how many windows the backend still holds.
func (p *Platform) LiveWindows() int {
	return len(p.windows)
}

// Window is a headless window: attributes are recorded, nothing is shown.
type Window struct {
	platform  *Platform
	id        platform.WindowID
	attrs     platform.Attributes
	destroyed bool
}

var _ platform.Window = (*Window)(nil)

func (w *Window) ID() platform.WindowID { return w.id }

func (w *Window) Handle() platform.Handle {
	return platform.HeadlessHandle{Window: w.id}
}

// Attributes returns the attributes the window was created with.
func (w *Window) Attributes() platform.Attributes {
	return w.attrs
}

// Destroyed reports whether teardown has run for this window.
func (w *Window) Destroyed() bool {
	return w.destroyed
}

// Destroy releases the window's slot. Destroying twice is an error; the
// manager guarantees a single call.
func (w *Window) Destroy() error {
	if w.destroyed {
		return fmt.Errorf("headless: window %d destroyed twice", w.id)
	}
	w.destroyed = true
	delete(w.platform.windows, w.id)
	return nil
}
