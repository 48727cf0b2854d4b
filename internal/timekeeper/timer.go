package timekeeper

import (
	"errors"
	"time"
)

var (
	// ErrAlreadyRunning is returned by Start when a session is in progress.
	ErrAlreadyRunning = errors.New("timer already running")
	// ErrNotRunning is returned by Stop when no session is in progress.
	ErrNotRunning = errors.New("no timer running")
	// ErrNegativeDuration is returned by Stop when the clock moved backwards.
	// The session is discarded rather than clamped so that skewed readings
	// never become billing data.
	ErrNegativeDuration = errors.New("elapsed duration is negative")
	// ErrInvalidDuration is returned by Recorder.Record for non-positive
	// durations.
	ErrInvalidDuration = errors.New("duration must be positive")
)

// SessionState enumerates the timer states.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRunning
	StatePaused
)

func (s SessionState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Timer tracks a single active (project, description) session. Paused time is
// accumulated separately and never counts toward the elapsed duration.
//
// The zero value is not usable; construct with NewTimer.
type Timer struct {
	clock Clock

	state            SessionState
	project          string
	description      string
	startedAt        time.Time
	pauseStartedAt   time.Time
	accumulatedPause time.Duration
}

// NewTimer returns an idle timer driven by the given clock.
func NewTimer(clock Clock) *Timer {
	return &Timer{clock: clock}
}

// State returns the current session state.
func (t *Timer) State() SessionState { return t.state }

// Project returns the project of the current session, or "" when idle.
func (t *Timer) Project() string { return t.project }

// Description returns the description of the current session, or "" when idle.
func (t *Timer) Description() string { return t.description }

// StartedAt returns the instant the current session began.
func (t *Timer) StartedAt() time.Time { return t.startedAt }

// Start begins a new session. Fails with ErrAlreadyRunning unless idle.
func (t *Timer) Start(project, description string) error {
	if t.state != StateIdle {
		return ErrAlreadyRunning
	}
	t.project = project
	t.description = description
	t.startedAt = t.clock.Now()
	t.accumulatedPause = 0
	t.state = StateRunning
	return nil
}

// Pause suspends accrual. Calling Pause when not running is a no-op; the
// driving events (hotkey, tick callback) can race and repeats must be safe.
func (t *Timer) Pause() {
	if t.state != StateRunning {
		return
	}
	t.pauseStartedAt = t.clock.Now()
	t.state = StatePaused
}

// Resume continues accrual after a pause. A no-op unless paused.
func (t *Timer) Resume() {
	if t.state != StatePaused {
		return
	}
	t.accumulatedPause += t.clock.Now().Sub(t.pauseStartedAt)
	t.state = StateRunning
}

// Stop finishes the session and returns the elapsed duration excluding paused
// time. Valid from Running or Paused (a paused timer is implicitly resumed
// first). The timer is idle afterwards, even on error.
func (t *Timer) Stop() (time.Duration, error) {
	if t.state == StateIdle {
		return 0, ErrNotRunning
	}
	t.Resume()
	elapsed := t.clock.Now().Sub(t.startedAt) - t.accumulatedPause
	t.reset()
	if elapsed < 0 {
		return 0, ErrNegativeDuration
	}
	return elapsed, nil
}

// Elapsed returns a non-mutating snapshot of the accrued duration: evaluated
// against the current instant while running, frozen at the pause instant while
// paused, zero when idle.
func (t *Timer) Elapsed() time.Duration {
	switch t.state {
	case StateRunning:
		return t.clock.Now().Sub(t.startedAt) - t.accumulatedPause
	case StatePaused:
		return t.pauseStartedAt.Sub(t.startedAt) - t.accumulatedPause
	default:
		return 0
	}
}

func (t *Timer) reset() {
	t.state = StateIdle
	t.project = ""
	t.description = ""
	t.startedAt = time.Time{}
	t.pauseStartedAt = time.Time{}
	t.accumulatedPause = 0
}
