package platform

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindWindows, NameWindows},
		{KindWindowsHeadless, NameWindowsHeadless},
		{KindLinuxX11, NameLinuxX11},
		{KindLinuxWayland, NameLinuxWayland},
		{KindLinuxHeadless, NameLinuxHeadless},
		{KindCustom, "custom"},
		{Kind(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Fatalf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestDefaultAttributes(t *testing.T) {
	attrs := DefaultAttributes()
	if !attrs.Resizable || !attrs.InitiallyVisible || !attrs.ShowBorder || !attrs.ShowTitleBar {
		t.Fatalf("unexpected defaults: %+v", attrs)
	}
	if attrs.Size != nil || attrs.Position != nil {
		t.Fatalf("defaults must leave size and position to the backend: %+v", attrs)
	}
	if attrs.TitleOrDefault() != "Window" {
		t.Fatalf("empty title must fall back to %q, got %q", "Window", attrs.TitleOrDefault())
	}

	attrs.Title = "demo"
	if attrs.TitleOrDefault() != "demo" {
		t.Fatalf("set title must win, got %q", attrs.TitleOrDefault())
	}
}

func TestResolutionConstructors(t *testing.T) {
	p := PhysicalSize(800, 600)
	if p.Unit != Physical || p.Width != 800 || p.Height != 600 {
		t.Fatalf("PhysicalSize = %+v", p)
	}
	l := LogicalSize(400, 300)
	if l.Unit != Logical || l.Width != 400 || l.Height != 300 {
		t.Fatalf("LogicalSize = %+v", l)
	}
}

func TestHandleUnion(t *testing.T) {
	handles := []Handle{
		X11Handle{Window: 1, Visual: 2, Screen: 0},
		Win32Handle{HWND: 3},
		HeadlessHandle{Window: 4},
	}
	for _, h := range handles {
		switch h.(type) {
		case X11Handle, Win32Handle, HeadlessHandle:
		default:
			t.Fatalf("unexpected handle type %T", h)
		}
	}
}
