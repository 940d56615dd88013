package mcp

// EngineStatusInput is the input for the engine_status tool.
type EngineStatusInput struct{}

// SupportedAttributesInfo mirrors the backend's supported-attribute table.
type SupportedAttributesInfo struct {
	Title              bool `json:"title"`
	Size               bool `json:"size"`
	Position           bool `json:"position"`
	HasCloseButton     bool `json:"has_close_button"`
	HasMinimizeButton  bool `json:"has_minimize_button"`
	HasMaximizeButton  bool `json:"has_maximize_button"`
	ShowDropShadow     bool `json:"show_drop_shadow"`
	ShowBorder         bool `json:"show_border"`
	ShowTitleBar       bool `json:"show_title_bar"`
	InitiallyDisabled  bool `json:"initially_disabled"`
	IsDialogBox        bool `json:"is_dialog_box"`
	InitiallyMinimized bool `json:"initially_minimized"`
	Resizable          bool `json:"resizable"`
	HasSystemMenu      bool `json:"has_system_menu"`
	InitiallyVisible   bool `json:"initially_visible"`
}

// EngineStatusOutput is the output for the engine_status tool.
type EngineStatusOutput struct {
	Platform      string                  `json:"platform"`
	Kind          string                  `json:"kind"`
	Headless      bool                    `json:"headless"`
	DarkMode      *bool                   `json:"dark_mode,omitempty"`
	ActiveWindows int                     `json:"active_windows"`
	DyingWindows  int                     `json:"dying_windows"`
	Supported     SupportedAttributesInfo `json:"supported_attributes"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes one alive window.
type WindowInfo struct {
	ID    uint32 `json:"id"`
	State string `json:"state"` // "active" or "dying"
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// CreateWindowInput is the input for the create_window tool.
type CreateWindowInput struct {
	Title     string `json:"title,omitempty" jsonschema:"Window title (default: Window)"`
	Width     uint32 `json:"width,omitempty" jsonschema:"Window width in pixels (default: 800)"`
	Height    uint32 `json:"height,omitempty" jsonschema:"Window height in pixels (default: 600)"`
	X         *int32 `json:"x,omitempty" jsonschema:"Window x position; both x and y must be set to take effect"`
	Y         *int32 `json:"y,omitempty" jsonschema:"Window y position; both x and y must be set to take effect"`
	Resizable *bool  `json:"resizable,omitempty" jsonschema:"Whether the window is resizable (default: true)"`
	Visible   *bool  `json:"visible,omitempty" jsonschema:"Whether the window is initially visible (default: true)"`
}

// CreateWindowOutput is the output for the create_window tool.
type CreateWindowOutput struct {
	ID uint32 `json:"id"`
}

// CloseWindowInput is the input for the close_window tool.
type CloseWindowInput struct {
	ID uint32 `json:"id" jsonschema:"required,Window id to close"`
}

// CloseWindowOutput is the output for the close_window tool.
type CloseWindowOutput struct {
	ID    uint32 `json:"id"`
	State string `json:"state"` // lifecycle state after the request: active, dying, or dead
}
