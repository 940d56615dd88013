package lumen

import (
	"errors"
	"testing"
)

func TestExitSignal_StartsRunning(t *testing.T) {
	s := NewExitSignal(nil)
	if s.ShouldExit() {
		t.Fatalf("fresh signal should not request exit")
	}
	if got := s.TakeExitState(); got.Status != Running {
		t.Fatalf("fresh take = %v, want running", got.Status)
	}
}

func TestExitSignal_TakeResetsToRunning(t *testing.T) {
	s := NewExitSignal(nil)
	s.RequestExit()

	if got := s.TakeExitState(); got.Status != ExitSuccess {
		t.Fatalf("first take = %v, want exit-success", got.Status)
	}
	if got := s.TakeExitState(); got.Status != Running {
		t.Fatalf("second take = %v, want running", got.Status)
	}
	if s.ShouldExit() {
		t.Fatalf("signal should be drained after take")
	}
}

func TestExitSignal_LastWriteBeforeTakeWins(t *testing.T) {
	s := NewExitSignal(nil)
	s.RequestExitError(errors.New("display connection lost"))
	s.RequestExit()

	if got := s.TakeExitState(); got.Status != ExitSuccess {
		t.Fatalf("take = %v, want exit-success (later write wins)", got.Status)
	}
}

func TestExitSignal_ErrorCollapsesAtTake(t *testing.T) {
	s := NewExitSignal(nil)
	s.RequestExitError(errors.New("display connection lost"))

	if !s.ShouldExit() {
		t.Fatalf("fatal signal should request exit")
	}

	got := s.TakeExitState()
	if got.Status != ExitErrorGeneric {
		t.Fatalf("take = %v, want exit-error-generic", got.Status)
	}
	if got.Err != nil {
		t.Fatalf("diagnostic crossed the take boundary: %v", got.Err)
	}
	if got := s.TakeExitState(); got.Status != Running {
		t.Fatalf("second take = %v, want running", got.Status)
	}
}

func TestExitSignal_PeekDoesNotConsume(t *testing.T) {
	s := NewExitSignal(nil)
	s.RequestExit()

	if !s.ShouldExit() || !s.ShouldExit() {
		t.Fatalf("peek must not consume the state")
	}
	if got := s.TakeExitState(); got.Status != ExitSuccess {
		t.Fatalf("take after peeks = %v, want exit-success", got.Status)
	}
}
