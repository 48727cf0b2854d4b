package timekeeper

import (
	"time"

	"github.com/meterhq/meter/internal/models"
)

// Phase enumerates the pomodoro controller states.
type Phase int

const (
	// PhaseIdle means pomodoro mode is disabled or no session has started;
	// the controller is a pass-through around the timer.
	PhaseIdle Phase = iota
	PhaseWorking
	PhaseShortBreak
	PhaseLongBreak
	// PhaseAwaitingAck is the transition buffer between work and break (and
	// back): the user must explicitly acknowledge before the next phase
	// starts.
	PhaseAwaitingAck
)

func (p Phase) String() string {
	switch p {
	case PhaseWorking:
		return "working"
	case PhaseShortBreak:
		return "short break"
	case PhaseLongBreak:
		return "long break"
	case PhaseAwaitingAck:
		return "awaiting ack"
	default:
		return "idle"
	}
}

type pendingAck int

const (
	ackNone pendingAck = iota
	ackStartBreak
	ackResumeWork
)

// Notification is the signal emitted on a phase expiry, to be delivered by the
// caller's notification sink (OS notification, TUI banner).
type Notification struct {
	Message string
}

// Controller wraps a Timer with the pomodoro work/break cycle. Phase expiry is
// polled: the surrounding event loop calls Tick at its own cadence (the TUI
// does so once per second) and delivers any returned notification.
type Controller struct {
	clock Clock
	timer *Timer
	cfg   models.PomodoroConfig

	phase           Phase
	pending         pendingAck
	completedCycles uint
	phaseStartedAt  time.Time

	// Remembered so an acknowledged break can restart a stopped timer on the
	// same project.
	lastProject     string
	lastDescription string
}

// NewController returns a controller around the given timer.
func NewController(clock Clock, timer *Timer, cfg models.PomodoroConfig) *Controller {
	return &Controller{clock: clock, timer: timer, cfg: cfg}
}

// Timer exposes the wrapped timer for display purposes.
func (c *Controller) Timer() *Timer { return c.timer }

// Config returns the active configuration.
func (c *Controller) Config() models.PomodoroConfig { return c.cfg }

// CurrentPhase returns the controller phase.
func (c *Controller) CurrentPhase() Phase { return c.phase }

// CompletedCycles returns the work cycles completed since the last long break.
func (c *Controller) CompletedCycles() uint { return c.completedCycles }

// BreakPending reports whether an acknowledgment would start a break.
func (c *Controller) BreakPending() bool {
	return c.phase == PhaseAwaitingAck && c.pending == ackStartBreak
}

// ResumePending reports whether an acknowledgment would resume work.
func (c *Controller) ResumePending() bool {
	return c.phase == PhaseAwaitingAck && c.pending == ackResumeWork
}

// NextBreakIsLong reports whether the upcoming break will be the long one.
func (c *Controller) NextBreakIsLong() bool {
	return c.completedCycles+1 >= c.cfg.CyclesBeforeLongBreak
}

// Start begins a new work session through the wrapped timer.
func (c *Controller) Start(project, description string) error {
	if err := c.timer.Start(project, description); err != nil {
		return err
	}
	c.lastProject = project
	c.lastDescription = description
	if c.cfg.Enabled {
		c.phase = PhaseWorking
		c.pending = ackNone
		c.phaseStartedAt = c.clock.Now()
	}
	return nil
}

// Stop finishes the timer session and resets all phase bookkeeping.
func (c *Controller) Stop() (time.Duration, error) {
	elapsed, err := c.timer.Stop()
	c.phase = PhaseIdle
	c.pending = ackNone
	c.completedCycles = 0
	c.phaseStartedAt = time.Time{}
	return elapsed, err
}

// Tick checks for phase expiry against the current instant. It returns a
// notification when a phase just ended, nil otherwise. When a work period
// expires the timer is paused so break time never accrues.
func (c *Controller) Tick() *Notification {
	if !c.cfg.Enabled {
		return nil
	}
	now := c.clock.Now()
	switch c.phase {
	case PhaseWorking:
		if now.Sub(c.phaseStartedAt) < c.cfg.WorkDuration() {
			return nil
		}
		c.lastProject = c.timer.Project()
		c.lastDescription = c.timer.Description()
		c.timer.Pause()
		c.phase = PhaseAwaitingAck
		c.pending = ackStartBreak
		c.phaseStartedAt = time.Time{}
		return &Notification{Message: "Work period complete! Time for a break."}
	case PhaseShortBreak, PhaseLongBreak:
		// The timer must stay paused for the whole break, even if something
		// resumed it behind the controller's back.
		c.timer.Pause()
		if now.Sub(c.phaseStartedAt) < c.breakDuration() {
			return nil
		}
		c.phase = PhaseAwaitingAck
		c.pending = ackResumeWork
		c.phaseStartedAt = time.Time{}
		return &Notification{Message: "Break complete! Ready to resume work?"}
	}
	return nil
}

// Acknowledge confirms a pending phase transition. Acknowledgments arriving
// outside AwaitingAck (double key-press, racing hotkey) are ignored.
func (c *Controller) Acknowledge() {
	if c.phase != PhaseAwaitingAck {
		return
	}
	switch c.pending {
	case ackStartBreak:
		if c.NextBreakIsLong() {
			c.phase = PhaseLongBreak
			c.completedCycles = 0
		} else {
			c.phase = PhaseShortBreak
			c.completedCycles++
		}
		c.pending = ackNone
		c.phaseStartedAt = c.clock.Now()
	case ackResumeWork:
		switch c.timer.State() {
		case StatePaused:
			c.timer.Resume()
		case StateIdle:
			if c.lastProject != "" {
				_ = c.timer.Start(c.lastProject, c.lastDescription)
			}
		}
		c.phase = PhaseWorking
		c.pending = ackNone
		c.phaseStartedAt = c.clock.Now()
	}
}

// SetConfig replaces the configuration. Disabling pomodoro mode resets the
// phase bookkeeping but never touches the timer session: a timer paused for a
// break stays paused until an explicit resume or stop. Enabling mid-session
// starts a fresh work phase.
func (c *Controller) SetConfig(cfg models.PomodoroConfig) {
	c.cfg = cfg
	if !cfg.Enabled {
		c.phase = PhaseIdle
		c.pending = ackNone
		c.completedCycles = 0
		c.phaseStartedAt = time.Time{}
		return
	}
	if c.timer.State() == StateRunning {
		c.phase = PhaseWorking
		c.pending = ackNone
		c.phaseStartedAt = c.clock.Now()
	}
}

// PhaseRemaining returns the time left in the current timed phase, zero for
// untimed phases. Clamped at zero.
func (c *Controller) PhaseRemaining() time.Duration {
	var total time.Duration
	switch c.phase {
	case PhaseWorking:
		total = c.cfg.WorkDuration()
	case PhaseShortBreak, PhaseLongBreak:
		total = c.breakDuration()
	default:
		return 0
	}
	remaining := total - c.clock.Now().Sub(c.phaseStartedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c *Controller) breakDuration() time.Duration {
	if c.phase == PhaseLongBreak {
		return c.cfg.LongBreakDuration()
	}
	return c.cfg.ShortBreakDuration()
}
