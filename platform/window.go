package platform

// Window is the capability object for one native window. The window manager
// holds the sole owning entry; application code only ever sees it through
// counted references handed out by the manager.
type Window interface {
	// ID returns the identity the manager allocated for this window.
	ID() WindowID

	// Handle exposes the raw native objects a downstream consumer (e.g. a
	// renderer) needs to attach to this window.
	Handle() Handle

	// Destroy tears down the native window. Called exactly once, by the
	// manager, after it has decided the window may die and no external
	// references remain.
	Destroy() error
}

// Handle is a union over the per-backend native handle types. Consumers
// type-switch on the concrete handle.
type Handle interface {
	implementsHandle()
}

// X11Handle carries the Xlib-protocol objects for an X11 window.
type X11Handle struct {
	// Window is the X11 window ID.
	Window uint32
	// Visual is the visual ID the window was created with.
	Visual uint32
	// Screen is the screen number of the backend's display connection.
	Screen int
}

func (X11Handle) implementsHandle() {}

// Win32Handle carries the HWND/HINSTANCE pair for a Win32 window.
type Win32Handle struct {
	HWND      uintptr
	HInstance uintptr
}

func (Win32Handle) implementsHandle() {}

// HeadlessHandle is the handle of a window with no on-screen surface.
type HeadlessHandle struct {
	Window WindowID
}

func (HeadlessHandle) implementsHandle() {}

// ResolutionUnit distinguishes how a requested size is measured.
type ResolutionUnit int

const (
	// Physical sizes are exact device pixels.
	Physical ResolutionUnit = iota
	// Logical sizes are scaled by the target monitor's DPI.
	Logical
)

// Resolution is a requested window size, physical or logical.
type Resolution struct {
	Unit   ResolutionUnit
	Width  uint32
	Height uint32
}

// PhysicalSize returns a physical-pixel resolution.
func PhysicalSize(width, height uint32) Resolution {
	return Resolution{Unit: Physical, Width: width, Height: height}
}

// LogicalSize returns a DPI-scaled resolution.
func LogicalSize(width, height uint32) Resolution {
	return Resolution{Unit: Logical, Width: width, Height: height}
}

// Position is a requested window position in screen coordinates.
type Position struct {
	X int32
	Y int32
}

// Attributes controls how a window is created. Not every attribute is
// available on every backend; unsupported ones are accepted and ignored.
// Query Platform.SupportedAttributes for what a backend actually honors.
type Attributes struct {
	// Title is the window title. Empty means "Window".
	Title string

	// Size is the requested size. Nil means backend default.
	Size *Resolution

	// Position is the requested position. Nil means backend default.
	Position *Position

	HasCloseButton     bool
	HasMinimizeButton  bool
	HasMaximizeButton  bool
	ShowDropShadow     bool
	ShowBorder         bool
	ShowTitleBar       bool
	InitiallyDisabled  bool
	IsDialogBox        bool
	InitiallyMinimized bool
	Resizable          bool
	HasSystemMenu      bool
	InitiallyVisible   bool
}

// DefaultAttributes returns the stated defaults: a titled, bordered, resizable,
// initially visible window with the usual caption buttons.
func DefaultAttributes() Attributes {
	return Attributes{
		HasCloseButton:    true,
		HasMinimizeButton: true,
		HasMaximizeButton: true,
		ShowBorder:        true,
		ShowTitleBar:      true,
		Resizable:         true,
		InitiallyVisible:  true,
	}
}

// TitleOrDefault returns the title, or "Window" when unset.
func (a Attributes) TitleOrDefault() string {
	if a.Title == "" {
		return "Window"
	}
	return a.Title
}

// SupportedAttributes is the fixed-shape table reporting which attributes a
// backend honors, one flag per Attributes field.
type SupportedAttributes struct {
	Title              bool
	Size               bool
	Position           bool
	HasCloseButton     bool
	HasMinimizeButton  bool
	HasMaximizeButton  bool
	ShowDropShadow     bool
	ShowBorder         bool
	ShowTitleBar       bool
	InitiallyDisabled  bool
	IsDialogBox        bool
	InitiallyMinimized bool
	Resizable          bool
	HasSystemMenu      bool
	InitiallyVisible   bool
}
