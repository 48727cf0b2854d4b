// Package notify delivers phase-change alerts to the user.
package notify

import (
	"os/exec"
	"runtime"
)

// Notifier delivers a short message to the user. Implementations are
// best-effort; delivery failures are swallowed.
type Notifier interface {
	Notify(message string)
}

// OSNotifier sends desktop notifications through the platform's native
// mechanism: osascript on macOS, notify-send elsewhere.
type OSNotifier struct {
	Title string
}

func (n OSNotifier) Notify(message string) {
	title := n.Title
	if title == "" {
		title = "meter"
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		script := `display notification "` + escape(message) + `" with title "` + escape(title) + `"`
		cmd = exec.Command("osascript", "-e", script)
	default:
		cmd = exec.Command("notify-send", title, message)
	}
	_ = cmd.Run()
}

// Noop discards all notifications.
type Noop struct{}

func (Noop) Notify(string) {}

func escape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
