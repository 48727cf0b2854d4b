package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateProjects(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.rateEditing {
		return m.updateRateForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.projectCursor > 0 {
			m.projectCursor--
		}
	case "down", "j":
		if m.projectCursor < len(m.projects)-1 {
			m.projectCursor++
		}
	case "e", "enter":
		if len(m.projects) > 0 {
			p := m.projects[m.projectCursor]
			m.rateEditing = true
			m.rateFocus = 0
			if p.Rate != nil {
				m.rateInput.SetValue(strconv.FormatFloat(*p.Rate, 'f', -1, 64))
			} else {
				m.rateInput.SetValue("")
			}
			if p.Currency != nil {
				m.currencyInput.SetValue(*p.Currency)
			} else {
				m.currencyInput.SetValue("")
			}
			m.rateInput.Focus()
			m.currencyInput.Blur()
		}
	case "c":
		if len(m.projects) > 0 {
			p := m.projects[m.projectCursor]
			if err := m.db.SetProjectRate(m.ctx, p.Name, nil, nil); err != nil {
				m.setStatus(fmt.Sprintf("Clear failed: %v", err))
			} else {
				m.setStatus(fmt.Sprintf("Cleared rate for %q", p.Name))
				m.refreshProjects()
			}
		}
	}
	return m, nil
}

func (m Model) updateRateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.rateEditing = false
			return m, nil
		case tea.KeyEnter:
			if m.rateFocus == 0 {
				m.rateFocus = 1
				m.rateInput.Blur()
				m.currencyInput.Focus()
				return m, nil
			}
			m.saveRate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.rateFocus == 0 {
		m.rateInput, cmd = m.rateInput.Update(msg)
	} else {
		m.currencyInput, cmd = m.currencyInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) saveRate() {
	m.rateEditing = false
	p := m.projects[m.projectCursor]

	rate, err := strconv.ParseFloat(strings.TrimSpace(m.rateInput.Value()), 64)
	if err != nil || rate <= 0 {
		m.setStatus("Rate must be a positive number")
		return
	}
	var currency *string
	if c := strings.TrimSpace(m.currencyInput.Value()); c != "" {
		currency = &c
	}
	if err := m.db.SetProjectRate(m.ctx, p.Name, &rate, currency); err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err))
		return
	}
	m.setStatus(fmt.Sprintf("Set rate for %q", p.Name))
	m.refreshProjects()
}

func (m Model) viewProjects() string {
	if len(m.projects) == 0 {
		return CurrentTheme.Dim.Render("No projects yet. Projects appear after recording entries.")
	}

	var b strings.Builder
	b.WriteString(CurrentTheme.Title.Render("Projects") + "\n\n")

	for i, p := range m.projects {
		rate := p.FormattedRate()
		if rate == "" {
			rate = CurrentTheme.Dim.Render("(no rate)")
		}
		line := fmt.Sprintf("%-24s %s", truncateText(p.Name, 24), rate)
		if i == m.projectCursor {
			b.WriteString(CurrentTheme.Focused.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if m.rateEditing {
		b.WriteString("\nRate: " + m.rateInput.View() + "  Currency: " + m.currencyInput.View())
	}
	return b.String()
}
