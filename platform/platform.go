// Package platform defines the capability contract between the engine core and
// a window-system backend. A backend satisfies Platform, the native windows it
// creates satisfy Window, and everything above this package stays backend-agnostic.
package platform

// WindowID is a backend-neutral window identity. IDs are allocated by the
// window manager from a monotonic counter and are never reused within the
// lifetime of the manager that issued them.
type WindowID uint32

// Kind identifies a backend family. Non-standard backends must use KindCustom
// together with a distinguishing name; they must never reuse a standard kind.
type Kind int

const (
	KindWindows Kind = iota
	KindWindowsHeadless
	KindLinuxX11
	KindLinuxWayland
	KindLinuxHeadless
	KindCustom
)

// Standard platform names as returned by Platform.Name.
const (
	NameWindows         = "windows"
	NameWindowsHeadless = "windows-headless"
	NameLinuxX11        = "linux-x11"
	NameLinuxWayland    = "linux-wayland"
	NameLinuxHeadless   = "linux-headless"
)

// String returns the standard name for a kind, or "custom" for KindCustom.
func (k Kind) String() string {
	switch k {
	case KindWindows:
		return NameWindows
	case KindWindowsHeadless:
		return NameWindowsHeadless
	case KindLinuxX11:
		return NameLinuxX11
	case KindLinuxWayland:
		return NameLinuxWayland
	case KindLinuxHeadless:
		return NameLinuxHeadless
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// WindowLifecycle is the slice of the window manager a backend is allowed to
// drive from inside its event pump.
type WindowLifecycle interface {
	// BeginClosingWindow requests a graceful close for id. Idempotent; a no-op
	// for ids that are not active.
	BeginClosingWindow(id WindowID)

	// NotifyWindowDestroyed reports that the OS already destroyed the native
	// window behind id, without the manager asking for it. The manager drops
	// the window immediately, outstanding references notwithstanding.
	NotifyWindowDestroyed(id WindowID)
}

// ExitReporter is the slice of the exit signal channel a backend is allowed to
// write from inside its event pump.
type ExitReporter interface {
	// RequestExit records a graceful quit request.
	RequestExit()

	// RequestExitError records a fatal runtime signal. err carries the
	// diagnostic; it is logged at write time.
	RequestExitError(err error)
}

// LoopInputs bundles the two collaborators a backend may notify while pumping
// events. Nothing else crosses the pump boundary.
type LoopInputs struct {
	WindowManager WindowLifecycle
	ExitSignal    ExitReporter
}

// Platform is the contract every backend must satisfy. A Platform is
// constructed once per process and, like the native APIs underneath it, must
// only be used from the thread that drives the event pump.
type Platform interface {
	// Name returns the platform name, one of the Name constants for standard
	// backends or a distinguishing string for custom ones.
	Name() string

	// Kind returns the platform kind.
	Kind() Kind

	// IsHeadless reports whether the backend cannot create on-screen surfaces.
	IsHeadless() bool

	// IsDarkMode reports the system theme. known is false when the backend
	// cannot determine it; callers must not read that as "light".
	IsDarkMode() (dark, known bool)

	// SupportedAttributes reports which window attributes this backend honors.
	// Setting an unsupported attribute is never an error; it is ignored.
	SupportedAttributes() SupportedAttributes

	// CreateWindow synchronously constructs a native window for id. It returns
	// a live, fully constructed window or an error, never a partial object.
	CreateWindow(attrs Attributes, id WindowID) (Window, error)

	// ProcessEvents drains all currently pending native events without
	// blocking for new ones, dispatching close/quit notifications into inputs
	// before returning. Called once per engine tick.
	ProcessEvents(inputs LoopInputs)

	// Close releases the backend's native connection. No window or pump calls
	// may follow.
	Close() error
}
