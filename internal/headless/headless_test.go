package headless

import (
	"errors"
	"testing"

	"github.com/lumen-engine/lumen/platform"
)

type recordingLifecycle struct {
	closed    []platform.WindowID
	destroyed []platform.WindowID
}

func (r *recordingLifecycle) BeginClosingWindow(id platform.WindowID) {
	r.closed = append(r.closed, id)
}

func (r *recordingLifecycle) NotifyWindowDestroyed(id platform.WindowID) {
	r.destroyed = append(r.destroyed, id)
}

type recordingExit struct {
	quits  int
	fatals []error
}

func (r *recordingExit) RequestExit() { r.quits++ }

func (r *recordingExit) RequestExitError(err error) { r.fatals = append(r.fatals, err) }

func TestProcessEvents_DispatchesInOrder(t *testing.T) {
	p := New(Options{})

	w, err := p.CreateWindow(platform.DefaultAttributes(), 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	p.PushCloseRequest(0)
	p.PushQuit()

	lc := &recordingLifecycle{}
	exit := &recordingExit{}
	p.ProcessEvents(platform.LoopInputs{WindowManager: lc, ExitSignal: exit})

	if len(lc.closed) != 1 || lc.closed[0] != 0 {
		t.Fatalf("close requests = %v, want [0]", lc.closed)
	}
	if exit.quits != 1 {
		t.Fatalf("quits = %d, want 1", exit.quits)
	}

	// Queue drained: a second pump dispatches nothing.
	p.ProcessEvents(platform.LoopInputs{WindowManager: lc, ExitSignal: exit})
	if len(lc.closed) != 1 || exit.quits != 1 {
		t.Fatalf("drained queue dispatched again")
	}

	if w.(*Window).Destroyed() {
		t.Fatalf("pump must not destroy windows on its own")
	}
}

func TestProcessEvents_DestroyNotifyRemovesWindow(t *testing.T) {
	p := New(Options{})

	if _, err := p.CreateWindow(platform.DefaultAttributes(), 7); err != nil {
		t.Fatalf("create: %v", err)
	}
	p.PushDestroyNotify(7)

	lc := &recordingLifecycle{}
	p.ProcessEvents(platform.LoopInputs{WindowManager: lc, ExitSignal: &recordingExit{}})

	if len(lc.destroyed) != 1 || lc.destroyed[0] != 7 {
		t.Fatalf("destroy notifications = %v, want [7]", lc.destroyed)
	}
	if p.LiveWindows() != 0 {
		t.Fatalf("backend kept a destroyed window")
	}
}

func TestCreateWindow_FailureInjection(t *testing.T) {
	p := New(Options{})

	want := errors.New("no more windows")
	p.FailNextCreate(want)

	if _, err := p.CreateWindow(platform.DefaultAttributes(), 0); !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}

	// Only the next create fails.
	if _, err := p.CreateWindow(platform.DefaultAttributes(), 1); err != nil {
		t.Fatalf("second create: %v", err)
	}
}

func TestWindow_DestroyTwiceIsAnError(t *testing.T) {
	p := New(Options{})

	w, err := p.CreateWindow(platform.DefaultAttributes(), 3)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := w.Destroy(); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if err := w.Destroy(); err == nil {
		t.Fatalf("double destroy must error")
	}
}

func TestFatalSignalCarriesError(t *testing.T) {
	p := New(Options{})
	want := errors.New("backend panic")
	p.PushFatal(want)

	exit := &recordingExit{}
	p.ProcessEvents(platform.LoopInputs{WindowManager: &recordingLifecycle{}, ExitSignal: exit})

	if len(exit.fatals) != 1 || !errors.Is(exit.fatals[0], want) {
		t.Fatalf("fatals = %v, want [%v]", exit.fatals, want)
	}
}

func TestHandleAndAttributes(t *testing.T) {
	p := New(Options{})

	attrs := platform.DefaultAttributes()
	attrs.Title = "probe"
	w, err := p.CreateWindow(attrs, 9)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	h, ok := w.Handle().(platform.HeadlessHandle)
	if !ok {
		t.Fatalf("handle = %T, want HeadlessHandle", w.Handle())
	}
	if h.Window != 9 {
		t.Fatalf("handle window = %d, want 9", h.Window)
	}
	if got := w.(*Window).Attributes().Title; got != "probe" {
		t.Fatalf("recorded title = %q", got)
	}
	if !p.IsHeadless() {
		t.Fatalf("headless backend must report headless")
	}
	if _, known := p.IsDarkMode(); known {
		t.Fatalf("headless backend cannot know the system theme")
	}
}
