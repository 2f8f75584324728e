// Package timer provides the main feeding timer tab.
package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cjjknight/baby-feeding/internal/app"
	"github.com/cjjknight/baby-feeding/internal/feeding"
	"github.com/cjjknight/baby-feeding/internal/services"
)

// keyMap defines the key bindings specific to the timer tab.
type keyMap struct {
	Feed key.Binding
}

// defaultKeyMap returns the default key bindings for the timer tab.
func defaultKeyMap() keyMap {
	return keyMap{
		Feed: key.NewBinding(
			key.WithKeys("f", " ", "enter"),
			key.WithHelp("f/space", "log feeding now"),
		),
	}
}

// Model represents the timer tab state.
type Model struct {
	state    *app.State
	services *services.Manager
	commands *app.Commands
	width    int
	height   int
	keys     keyMap

	recording bool
	lastFed   time.Time
}

// New creates a new timer model.
func New(state *app.State, svc *services.Manager, commands *app.Commands) *Model {
	return &Model{
		state:    state,
		services: svc,
		commands: commands,
		keys:     defaultKeyMap(),
	}
}

// Init initializes the timer tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the timer tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Feed) && !m.recording {
			m.recording = true
			return m, m.commands.RecordFeed()
		}

	case app.FeedRecordedMsg:
		m.recording = false
		if msg.Error == nil {
			m.lastFed = msg.At
		}
	}

	return m, nil
}

// SetSize sets the available size for the timer tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Feed}
}

// display returns the current timer display state.
func (m *Model) display() feeding.DisplayState {
	return m.state.GetDisplay()
}
