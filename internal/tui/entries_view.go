package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/meterhq/meter/internal/util"
)

func (m Model) updateEntries(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmDelete {
		switch key.String() {
		case "y", "Y":
			e := m.entries[m.entryCursor]
			if err := m.db.DeleteEntry(m.ctx, e.ID); err != nil {
				m.setStatus(fmt.Sprintf("Delete failed: %v", err))
			} else {
				m.setStatus(fmt.Sprintf("Deleted entry #%d", e.ID))
				m.refreshEntries()
			}
		}
		m.confirmDelete = false
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.entryCursor > 0 {
			m.entryCursor--
		}
	case "down", "j":
		if m.entryCursor < len(m.entries)-1 {
			m.entryCursor++
		}
	case "b":
		if len(m.entries) > 0 {
			e := m.entries[m.entryCursor]
			if e.End == nil {
				m.setStatus("Cannot bill a running entry")
				break
			}
			if err := m.db.SetEntryBilled(m.ctx, e.ID, !e.Billed); err != nil {
				m.setStatus(fmt.Sprintf("Update failed: %v", err))
			} else {
				m.refreshEntries()
			}
		}
	case "d":
		if len(m.entries) > 0 {
			m.confirmDelete = true
		}
	case "R":
		m.refreshEntries()
		m.setStatus("Entries reloaded")
	}
	return m, nil
}

func (m Model) viewEntries() string {
	if len(m.entries) == 0 {
		return CurrentTheme.Dim.Render("No entries yet. Start a timer on the Timer tab.")
	}

	var b strings.Builder
	b.WriteString(CurrentTheme.Title.Render("Entries") + "\n\n")

	// Keep the cursor visible in tall lists.
	visible := m.height - 10
	if visible < 5 {
		visible = 5
	}
	start := 0
	if m.entryCursor >= visible {
		start = m.entryCursor - visible + 1
	}

	for i := start; i < len(m.entries) && i < start+visible; i++ {
		e := m.entries[i]
		billed := "[ ]"
		if e.Billed {
			billed = "[x]"
		}
		dur := "running"
		if e.End != nil {
			dur = util.FormatDuration(e.Duration())
		}
		line := fmt.Sprintf("%s %s  %-18s %8s  %s",
			billed, e.Start.Local().Format("2006-01-02"),
			truncateText(e.Project, 18), dur, e.Description)
		line = truncateText(line, m.contentWidth())

		if i == m.entryCursor {
			b.WriteString(CurrentTheme.Focused.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if m.confirmDelete {
		e := m.entries[m.entryCursor]
		b.WriteString("\n" + CurrentTheme.Break.Render(
			fmt.Sprintf("Delete entry #%d (%s)? y/n", e.ID, e.Project)))
	}
	return b.String()
}
