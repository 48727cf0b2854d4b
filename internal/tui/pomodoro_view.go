package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var cfgLabels = [...]string{
	"Enabled",
	"Work minutes",
	"Short break minutes",
	"Long break minutes",
	"Cycles before long break",
}

func (m Model) updatePomodoro(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.cfgEditing {
		return m.updateCfgInput(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cfgCursor > 0 {
			m.cfgCursor--
		}
	case "down", "j":
		if m.cfgCursor < len(cfgLabels)-1 {
			m.cfgCursor++
		}
	case "enter", " ":
		if m.cfgCursor == 0 {
			m.cfgDraft.Enabled = !m.cfgDraft.Enabled
			break
		}
		m.cfgEditing = true
		m.cfgInput.SetValue(strconv.FormatUint(uint64(m.cfgValue(m.cfgCursor)), 10))
		m.cfgInput.Focus()
	case "s":
		m.saveCfg()
	}
	return m, nil
}

func (m Model) updateCfgInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.cfgEditing = false
			return m, nil
		case tea.KeyEnter:
			m.cfgEditing = false
			v, err := strconv.ParseUint(strings.TrimSpace(m.cfgInput.Value()), 10, 32)
			if err != nil || v == 0 {
				m.setStatus("Value must be a positive number")
				return m, nil
			}
			m.setCfgValue(m.cfgCursor, uint(v))
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.cfgInput, cmd = m.cfgInput.Update(msg)
	return m, cmd
}

func (m Model) cfgValue(row int) uint {
	switch row {
	case 1:
		return m.cfgDraft.WorkMinutes
	case 2:
		return m.cfgDraft.ShortBreakMinutes
	case 3:
		return m.cfgDraft.LongBreakMinutes
	default:
		return m.cfgDraft.CyclesBeforeLongBreak
	}
}

func (m *Model) setCfgValue(row int, v uint) {
	switch row {
	case 1:
		m.cfgDraft.WorkMinutes = v
	case 2:
		m.cfgDraft.ShortBreakMinutes = v
	case 3:
		m.cfgDraft.LongBreakMinutes = v
	case 4:
		m.cfgDraft.CyclesBeforeLongBreak = v
	}
}

// saveCfg persists the draft and applies it to the live controller. Disabling
// mid-session leaves the timer exactly as it is.
func (m *Model) saveCfg() {
	if err := m.cfgDraft.Validate(); err != nil {
		m.setStatus(fmt.Sprintf("Invalid config: %v", err))
		return
	}
	if err := m.db.SetPomodoroConfig(m.ctx, m.cfgDraft); err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err))
		return
	}
	m.controller.SetConfig(m.cfgDraft)
	m.setStatus("Pomodoro settings saved")
}

func (m Model) viewPomodoro() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Title.Render("Pomodoro") + "\n\n")

	for i, label := range cfgLabels {
		var value string
		if i == 0 {
			value = "off"
			if m.cfgDraft.Enabled {
				value = "on"
			}
		} else if m.cfgEditing && i == m.cfgCursor {
			value = m.cfgInput.View()
		} else {
			value = strconv.FormatUint(uint64(m.cfgValue(i)), 10)
		}

		line := fmt.Sprintf("%-26s %s", label, value)
		if i == m.cfgCursor {
			b.WriteString(CurrentTheme.Focused.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + CurrentTheme.Dim.Render("enter: edit/toggle   s: save"))
	return b.String()
}
