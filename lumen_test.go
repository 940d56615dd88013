package lumen

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/lumen-engine/lumen/internal/headless"
	"github.com/lumen-engine/lumen/platform"
)

func newTestEngine(t *testing.T) (*Engine, *headless.Platform) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := headless.New(headless.Options{Logger: logger})
	eng, err := New(Options{Platform: p, Logger: logger})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return eng, p
}

func TestEngine_TickIsRunningWhenIdle(t *testing.T) {
	eng, _ := newTestEngine(t)
	defer eng.Close()

	if state := eng.ProcessEvents(); state.Status != Running {
		t.Fatalf("idle tick = %v, want running", state.Status)
	}
}

func TestEngine_QuitSignalFlowsThroughTick(t *testing.T) {
	eng, p := newTestEngine(t)
	defer eng.Close()

	p.PushQuit()

	if state := eng.ProcessEvents(); state.Status != ExitSuccess {
		t.Fatalf("tick after quit = %v, want exit-success", state.Status)
	}
	if state := eng.ProcessEvents(); state.Status != Running {
		t.Fatalf("next tick = %v, want running", state.Status)
	}
}

func TestEngine_FatalSignalCollapsesThroughTick(t *testing.T) {
	eng, p := newTestEngine(t)
	defer eng.Close()

	p.PushFatal(errors.New("compositor died"))

	if state := eng.ProcessEvents(); state.Status != ExitErrorGeneric {
		t.Fatalf("tick after fatal = %v, want exit-error-generic", state.Status)
	}
}

func TestEngine_CloseRequestReconcilesSameTick(t *testing.T) {
	eng, p := newTestEngine(t)
	defer eng.Close()

	id, weak, err := eng.CreateWindow(platform.DefaultAttributes())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	p.PushCloseRequest(id)

	// Nothing holds a reference, so the same tick that observes the close
	// request finishes the teardown in its reconcile pass.
	if state := eng.ProcessEvents(); state.Status != Running {
		t.Fatalf("tick = %v, want running", state.Status)
	}
	if weak.Alive() {
		t.Fatalf("window survived close + reconcile")
	}
	if p.LiveWindows() != 0 {
		t.Fatalf("native window not destroyed")
	}
}

func TestEngine_CloseWaitsForReferenceAcrossTicks(t *testing.T) {
	eng, p := newTestEngine(t)
	defer eng.Close()

	id, weak, err := eng.CreateWindow(platform.DefaultAttributes())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ref, ok := weak.Upgrade()
	if !ok {
		t.Fatalf("upgrade failed for active window")
	}

	p.PushCloseRequest(id)
	eng.ProcessEvents()

	if !eng.WindowManager().IsWindowDying(id) {
		t.Fatalf("pinned window should still be dying after the tick")
	}

	ref.Release()
	eng.ProcessEvents()

	if eng.WindowManager().IsWindowAlive(id) {
		t.Fatalf("window should be gone one tick after release")
	}
}

func TestEngine_OSDestroyNotification(t *testing.T) {
	eng, p := newTestEngine(t)
	defer eng.Close()

	id, weak, err := eng.CreateWindow(platform.DefaultAttributes())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	p.PushDestroyNotify(id)
	eng.ProcessEvents()

	if weak.Alive() {
		t.Fatalf("OS-destroyed window still alive after tick")
	}
}

func TestEngine_CreateWindowPropagatesPlatformError(t *testing.T) {
	eng, p := newTestEngine(t)
	defer eng.Close()

	p.FailNextCreate(errors.New("out of native resources"))
	if _, _, err := eng.CreateWindow(platform.DefaultAttributes()); err == nil {
		t.Fatalf("expected creation error")
	}
	if active, dying := eng.WindowManager().Counts(); active != 0 || dying != 0 {
		t.Fatalf("failed create left windows behind: %d/%d", active, dying)
	}
}

func TestEngine_RunLoopContract(t *testing.T) {
	eng, p := newTestEngine(t)
	defer eng.Close()

	id, _, err := eng.CreateWindow(platform.DefaultAttributes())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Caller's loop: tick while a window is alive and the result is Running.
	p.PushCloseRequest(id)

	ticks := 0
	for eng.WindowManager().IsWindowAlive(id) {
		state := eng.ProcessEvents()
		if state.ShouldExit() {
			t.Fatalf("unexpected exit state %v", state.Status)
		}
		ticks++
		if ticks > 3 {
			t.Fatalf("window never finished closing")
		}
	}
}
