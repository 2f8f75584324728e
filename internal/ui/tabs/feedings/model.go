// Package feedings provides the feeding log tab for browsing and editing
// recorded feedings.
package feedings

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cjjknight/baby-feeding/internal/app"
	"github.com/cjjknight/baby-feeding/internal/models"
	"github.com/cjjknight/baby-feeding/internal/services"
)

// timeInputLayout is the format users type feeding times in.
const timeInputLayout = "2006-01-02 15:04"

// inputMode tracks what the text input is being used for.
type inputMode int

const (
	inputNone inputMode = iota
	inputAddMissed
	inputEdit
)

// keyMap defines the key bindings specific to the feedings tab.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	AddMissed key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// defaultKeyMap returns the default key bindings for the feedings tab.
func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous feeding"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next feeding"),
		),
		AddMissed: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add missed feeding"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit feeding"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete feeding"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Model represents the feedings tab state.
type Model struct {
	state    *app.State
	services *services.Manager
	commands *app.Commands
	width    int
	height   int
	keys     keyMap
	viewport viewport.Model

	entries  []time.Time // newest first
	selected int

	mode     inputMode
	input    textinput.Model
	editing  time.Time
	inputErr string
}

// New creates a new feedings model.
func New(state *app.State, svc *services.Manager, commands *app.Commands) *Model {
	ti := textinput.New()
	ti.Placeholder = timeInputLayout
	ti.CharLimit = len(timeInputLayout)
	ti.Width = len(timeInputLayout) + 2

	return &Model{
		state:    state,
		services: svc,
		commands: commands,
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
		input:    ti,
	}
}

// Init initializes the feedings tab.
func (m *Model) Init() tea.Cmd {
	return m.commands.LoadLog()
}

// Update handles messages for the feedings tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case app.LogLoadedMsg:
		m.setEntries(msg.Log)

	case app.FeedDeletedMsg, app.FeedEditedMsg, app.MissedFeedAddedMsg, app.FeedRecordedMsg:
		return m, m.commands.LoadLog()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// setEntries rebuilds the newest-first listing from the log.
func (m *Model) setEntries(log models.FeedingLog) {
	sorted := log.Sorted()
	entries := make([]time.Time, len(sorted))
	for i, t := range sorted {
		entries[len(sorted)-1-i] = t
	}
	m.entries = entries

	if m.selected >= len(m.entries) {
		m.selected = len(m.entries) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (app.Tab, tea.Cmd) {
	if m.mode != inputNone {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.entries)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.AddMissed):
		m.mode = inputAddMissed
		m.inputErr = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if m.selected < len(m.entries) {
			m.mode = inputEdit
			m.inputErr = ""
			m.editing = m.entries[m.selected]
			m.input.SetValue(m.editing.Format(timeInputLayout))
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Delete):
		if m.selected < len(m.entries) {
			return m, m.commands.DeleteFeed(m.entries[m.selected])
		}

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (app.Tab, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = inputNone
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		value, err := time.ParseInLocation(timeInputLayout, m.input.Value(), time.Local)
		if err != nil {
			m.inputErr = fmt.Sprintf("Expected %s", timeInputLayout)
			return m, nil
		}

		mode := m.mode
		m.mode = inputNone
		m.input.Blur()

		if mode == inputEdit {
			return m, m.commands.EditFeed(m.editing, value)
		}
		return m, m.commands.AddMissedFeed(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// SetSize sets the available size for the feedings tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-6, 3)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.AddMissed,
		m.keys.Edit,
		m.keys.Delete,
	}
}
