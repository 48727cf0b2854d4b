// Package tui implements the interactive terminal frontend: a live timer
// with pomodoro pacing, plus entry, project and cadence management screens.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/meterhq/meter/internal/database"
	"github.com/meterhq/meter/internal/models"
	"github.com/meterhq/meter/internal/notify"
	"github.com/meterhq/meter/internal/timekeeper"
	"github.com/meterhq/meter/internal/util"
)

// screen identifies the active tab.
type screen int

const (
	screenTimer screen = iota
	screenEntries
	screenProjects
	screenPomodoro
)

var screenNames = [...]string{"Timer", "Entries", "Projects", "Pomodoro"}

// --- Messages ---
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the root bubbletea model. All screens share it; per-screen update
// and view logic lives in the *_view.go files.
type Model struct {
	ctx context.Context
	db  database.Repository

	controller *timekeeper.Controller
	recorder   *timekeeper.Recorder
	notifier   notify.Notifier

	screen screen
	width  int
	height int

	// Timer screen start form.
	projectInput textinput.Model
	descInput    textinput.Model
	formFocus    int

	// Entries screen.
	entries       []models.Entry
	entryCursor   int
	confirmDelete bool

	// Projects screen.
	projects      []models.Project
	projectCursor int
	rateEditing   bool
	rateFocus     int
	rateInput     textinput.Model
	currencyInput textinput.Model

	// Pomodoro settings screen.
	cfgDraft   models.PomodoroConfig
	cfgCursor  int
	cfgEditing bool
	cfgInput   textinput.Model

	status      string
	statusUntil time.Time
}

// New builds the model around an open database. Entries and projects are
// loaded up front so every screen renders immediately.
func New(ctx context.Context, db database.Repository) Model {
	clock := timekeeper.SystemClock()
	cfg := db.GetPomodoroConfig(ctx)

	m := Model{
		ctx:        ctx,
		db:         db,
		controller: timekeeper.NewController(clock, timekeeper.NewTimer(clock), cfg),
		recorder:   timekeeper.NewRecorder(clock, db),
		notifier:   notify.OSNotifier{Title: "meter"},
		cfgDraft:   cfg,
	}

	m.projectInput = textinput.New()
	m.projectInput.Placeholder = "project"
	m.projectInput.CharLimit = 64
	m.projectInput.Width = 30
	m.projectInput.Focus()

	m.descInput = textinput.New()
	m.descInput.Placeholder = "what are you working on?"
	m.descInput.CharLimit = 120
	m.descInput.Width = 40

	m.rateInput = textinput.New()
	m.rateInput.Placeholder = "150"
	m.rateInput.CharLimit = 10
	m.rateInput.Width = 10

	m.currencyInput = textinput.New()
	m.currencyInput.Placeholder = "$"
	m.currencyInput.CharLimit = 3
	m.currencyInput.Width = 4

	m.cfgInput = textinput.New()
	m.cfgInput.CharLimit = 3
	m.cfgInput.Width = 5

	m.refreshEntries()
	m.refreshProjects()
	return m
}

// Run starts the bubbletea program and blocks until it exits.
func Run(ctx context.Context, db database.Repository) error {
	p := tea.NewProgram(New(ctx, db), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		if note := m.controller.Tick(); note != nil {
			m.setStatus(note.Message)
			m.notifier.Notify(note.Message)
		}
		if m.status != "" && time.Now().After(m.statusUntil) {
			m.status = ""
		}
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab:
			m.screen = (m.screen + 1) % screen(len(screenNames))
			m.confirmDelete = false
			return m, nil
		case tea.KeyShiftTab:
			m.screen = (m.screen + screen(len(screenNames)) - 1) % screen(len(screenNames))
			m.confirmDelete = false
			return m, nil
		}
		if msg.String() == "q" && !m.textEditing() {
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenTimer:
		return m.updateTimer(msg)
	case screenEntries:
		return m.updateEntries(msg)
	case screenProjects:
		return m.updateProjects(msg)
	case screenPomodoro:
		return m.updatePomodoro(msg)
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenTimer:
		body = m.viewTimer()
	case screenEntries:
		body = m.viewEntries()
	case screenProjects:
		body = m.viewProjects()
	case screenPomodoro:
		body = m.viewPomodoro()
	}
	return CurrentTheme.Base.Render(
		m.renderHeader() + "\n\n" + body + "\n\n" + m.renderStatus() + m.renderFooter())
}

// textEditing reports whether a text input currently owns the keyboard, in
// which case "q" must reach the input instead of quitting.
func (m Model) textEditing() bool {
	switch m.screen {
	case screenTimer:
		return m.timerIdle() && (m.projectInput.Focused() || m.descInput.Focused())
	case screenProjects:
		return m.rateEditing
	case screenPomodoro:
		return m.cfgEditing
	}
	return false
}

func (m Model) timerIdle() bool {
	return m.controller.Timer().State() == timekeeper.StateIdle
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusUntil = time.Now().Add(5 * time.Second)
}

func (m *Model) refreshEntries() {
	entries, err := m.db.ListEntries(m.ctx, nil)
	if err != nil {
		util.LogError("load entries", err)
		return
	}
	m.entries = entries
	if m.entryCursor >= len(m.entries) {
		m.entryCursor = len(m.entries) - 1
	}
	if m.entryCursor < 0 {
		m.entryCursor = 0
	}
}

func (m *Model) refreshProjects() {
	projects, err := m.db.ListProjects(m.ctx)
	if err != nil {
		util.LogError("load projects", err)
		return
	}
	m.projects = projects
	if m.projectCursor >= len(m.projects) {
		m.projectCursor = len(m.projects) - 1
	}
	if m.projectCursor < 0 {
		m.projectCursor = 0
	}
}
