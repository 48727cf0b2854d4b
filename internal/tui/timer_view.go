package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/meterhq/meter/internal/timekeeper"
	"github.com/meterhq/meter/internal/util"
)

func (m Model) updateTimer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.timerIdle() {
		return m.updateStartForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "s":
			m.stopAndRecord()
			return m, nil
		case "p":
			m.controller.Timer().Pause()
			return m, nil
		case "r":
			// Resuming by hand is only sensible outside the break phases;
			// during a break the controller owns the paused timer.
			switch m.controller.CurrentPhase() {
			case timekeeper.PhaseIdle, timekeeper.PhaseWorking:
				m.controller.Timer().Resume()
			}
			return m, nil
		case " ":
			m.controller.Acknowledge()
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateStartForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.projectInput.Blur()
			m.descInput.Blur()
			return m, nil
		case tea.KeyUp, tea.KeyDown:
			m.formFocus = 1 - m.formFocus
			m.syncFormFocus()
			return m, nil
		case tea.KeyEnter:
			if m.formFocus == 0 {
				m.formFocus = 1
				m.syncFormFocus()
				return m, nil
			}
			m.startTimer()
			return m, nil
		}
		if !m.projectInput.Focused() && !m.descInput.Focused() {
			// Blurred form: any printable key re-engages it.
			if key.Type == tea.KeyRunes {
				m.formFocus = 0
				m.syncFormFocus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.projectInput, cmd = m.projectInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) syncFormFocus() {
	if m.formFocus == 0 {
		m.projectInput.Focus()
		m.descInput.Blur()
	} else {
		m.projectInput.Blur()
		m.descInput.Focus()
	}
}

func (m *Model) startTimer() {
	project := strings.TrimSpace(m.projectInput.Value())
	if project == "" {
		m.setStatus("Project name is required")
		m.formFocus = 0
		m.syncFormFocus()
		return
	}
	if err := m.controller.Start(project, strings.TrimSpace(m.descInput.Value())); err != nil {
		m.setStatus(fmt.Sprintf("Cannot start: %v", err))
		return
	}
	m.setStatus(fmt.Sprintf("Tracking %q", project))
}

// stopAndRecord finishes the session and persists it. The project and
// description must be captured before Stop resets the timer.
func (m *Model) stopAndRecord() {
	timer := m.controller.Timer()
	project := timer.Project()
	description := timer.Description()

	elapsed, err := m.controller.Stop()
	if err != nil {
		if errors.Is(err, timekeeper.ErrNegativeDuration) {
			m.setStatus("Session discarded: clock went backwards")
		} else {
			m.setStatus(fmt.Sprintf("Stop failed: %v", err))
		}
		m.resetStartForm()
		return
	}

	entry, err := m.recorder.Record(m.ctx, project, description, elapsed)
	if err != nil {
		m.setStatus(fmt.Sprintf("Could not record entry: %v", err))
		m.resetStartForm()
		return
	}
	m.setStatus(fmt.Sprintf("Recorded %s on %q", util.FormatDuration(entry.Duration()), project))
	m.refreshEntries()
	m.refreshProjects()
	m.resetStartForm()
}

func (m *Model) resetStartForm() {
	m.projectInput.SetValue("")
	m.descInput.SetValue("")
	m.formFocus = 0
	m.syncFormFocus()
}

func (m Model) viewTimer() string {
	if m.timerIdle() {
		var b strings.Builder
		b.WriteString(CurrentTheme.Title.Render("Start a session") + "\n\n")
		b.WriteString("  " + m.projectInput.View() + "\n")
		b.WriteString("  " + m.descInput.View() + "\n")
		if m.controller.Config().Enabled {
			b.WriteString("\n" + CurrentTheme.Dim.Render(fmt.Sprintf(
				"  pomodoro on: %dm work / %dm break",
				m.controller.Config().WorkMinutes, m.controller.Config().ShortBreakMinutes)))
		}
		return b.String()
	}

	timer := m.controller.Timer()
	var b strings.Builder

	state := "RUNNING"
	style := CurrentTheme.Highlight
	if timer.State() == timekeeper.StatePaused {
		state = "PAUSED"
		style = CurrentTheme.Break
	}
	b.WriteString(style.Render(state) + "  " + CurrentTheme.Title.Render(timer.Project()) + "\n")
	if timer.Description() != "" {
		b.WriteString(CurrentTheme.Dim.Render(timer.Description()) + "\n")
	}
	b.WriteString("\n  Elapsed: " + CurrentTheme.Highlight.Render(util.FormatDuration(timer.Elapsed())) + "\n")

	if m.controller.Config().Enabled {
		b.WriteString("\n" + m.viewPhase())
	}
	return b.String()
}

func (m Model) viewPhase() string {
	cfg := m.controller.Config()
	cycle := fmt.Sprintf("cycle %d/%d", m.controller.CompletedCycles()+1, cfg.CyclesBeforeLongBreak)

	switch m.controller.CurrentPhase() {
	case timekeeper.PhaseWorking:
		return fmt.Sprintf("  Work: %s left (%s)",
			util.FormatClock(m.controller.PhaseRemaining()), cycle)
	case timekeeper.PhaseShortBreak:
		return CurrentTheme.Break.Render(fmt.Sprintf("  Short break: %s left",
			util.FormatClock(m.controller.PhaseRemaining())))
	case timekeeper.PhaseLongBreak:
		return CurrentTheme.Break.Render(fmt.Sprintf("  Long break: %s left",
			util.FormatClock(m.controller.PhaseRemaining())))
	case timekeeper.PhaseAwaitingAck:
		if m.controller.BreakPending() {
			kind := "short"
			if m.controller.NextBreakIsLong() {
				kind = "long"
			}
			return CurrentTheme.Break.Render(
				fmt.Sprintf("  Work period complete - press space to start your %s break", kind))
		}
		return CurrentTheme.Break.Render("  Break over - press space to resume work")
	}
	return ""
}
