package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func (m Model) renderHeader() string {
	var tabs []string
	for i, name := range screenNames {
		if screen(i) == m.screen {
			tabs = append(tabs, CurrentTheme.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, CurrentTheme.Tab.Render(name))
		}
	}
	return CurrentTheme.Header.Render("meter") + "  " + strings.Join(tabs, " ")
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	return CurrentTheme.Status.Render(m.status) + "\n"
}

func (m Model) renderFooter() string {
	var hints string
	switch m.screen {
	case screenTimer:
		if m.timerIdle() {
			hints = "enter: start   tab: next screen   q: quit"
		} else {
			hints = "s: stop   p: pause   r: resume   space: acknowledge   tab: next screen"
		}
	case screenEntries:
		hints = "b: toggle billed   d: delete   R: reload   tab: next screen"
	case screenProjects:
		hints = "e: edit rate   c: clear rate   tab: next screen"
	case screenPomodoro:
		hints = "enter: edit/toggle   s: save   tab: next screen"
	}
	return CurrentTheme.Dim.Render(hints)
}

// contentWidth is the usable row width inside the base margins.
func (m Model) contentWidth() int {
	w := m.width - 6
	if w < 40 {
		w = 40
	}
	return w
}

func truncateText(text string, max int) string {
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}
