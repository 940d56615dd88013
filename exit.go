package lumen

import (
	"log/slog"
	"sync"
)

// ExitStatus enumerates the engine's termination states.
type ExitStatus int

const (
	// Running is the steady state: no termination requested.
	Running ExitStatus = iota
	// ExitSuccess means a graceful quit was requested.
	ExitSuccess
	// ExitError means a fatal runtime signal carrying a diagnostic was
	// recorded. The diagnostic only exists inside the signal cell; it is
	// logged when recorded and does not cross the take boundary.
	ExitError
	// ExitErrorGeneric means a fatal runtime signal whose diagnostic is no
	// longer available.
	ExitErrorGeneric
)

// String returns a short name for the status.
func (s ExitStatus) String() string {
	switch s {
	case Running:
		return "running"
	case ExitSuccess:
		return "exit-success"
	case ExitError:
		return "exit-error"
	case ExitErrorGeneric:
		return "exit-error-generic"
	default:
		return "unknown"
	}
}

// ExitState is the tagged termination value carried by the exit signal
// channel. Err is only set while Status == ExitError.
type ExitState struct {
	Status ExitStatus
	Err    error
}

// ShouldExit reports whether the state requests termination.
func (s ExitState) ShouldExit() bool {
	return s.Status != Running
}

// ExitSignal is the process-wide cell a backend's event pump writes into when
// it observes a native quit or fatal signal, and that the engine tick reads
// and clears. It is the one piece of the core that is mutex-guarded: pumps and
// auxiliary surfaces may write it, but there is exactly one consumer.
type ExitSignal struct {
	mu     sync.Mutex
	state  ExitState
	logger *slog.Logger
}

// NewExitSignal creates a signal cell in the Running state.
func NewExitSignal(logger *slog.Logger) *ExitSignal {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExitSignal{logger: logger}
}

// Set overwrites the current exit state. The last write before a take wins:
// an explicit quit observed after a fatal signal is advisory, not cumulative.
// A fatal state's diagnostic is logged here, at write time, because it will
// not survive the take boundary.
func (s *ExitSignal) Set(state ExitState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state.Status == ExitError && state.Err != nil {
		s.logger.Error("fatal signal recorded", "error", state.Err)
	}
	s.state = state
}

// RequestExit records a graceful quit request.
func (s *ExitSignal) RequestExit() {
	s.Set(ExitState{Status: ExitSuccess})
}

// RequestExitError records a fatal runtime signal.
func (s *ExitSignal) RequestExitError(err error) {
	s.Set(ExitState{Status: ExitError, Err: err})
}

// ShouldExit reports whether termination has been requested, without
// consuming the state. For loop guards that must not disturb the one
// authoritative take.
func (s *ExitSignal) ShouldExit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ShouldExit()
}

// TakeExitState atomically reads the current state and resets the cell to
// Running. A stored ExitError is returned as ExitErrorGeneric: only the fact
// of the error crosses this boundary, and no new diagnostic is invented here.
func (s *ExitSignal) TakeExitState() ExitState {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.state
	if out.Status == ExitError {
		out = ExitState{Status: ExitErrorGeneric}
	}
	s.state = ExitState{Status: Running}
	return out
}
