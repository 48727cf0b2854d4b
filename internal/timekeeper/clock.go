// Package timekeeper implements the timer and pomodoro state machines that
// measure billable work sessions, and the recorder that turns a finished
// session into a persisted entry.
package timekeeper

import "time"

// Clock supplies the current instant. It exists so the state machines can be
// driven by a fake clock in tests without wall-clock waits.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
