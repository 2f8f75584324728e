// Package stats provides the summary statistics tab.
package stats

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cjjknight/baby-feeding/internal/app"
	"github.com/cjjknight/baby-feeding/internal/models"
	"github.com/cjjknight/baby-feeding/internal/services"
)

// keyMap defines the key bindings specific to the stats tab.
type keyMap struct {
	ToggleRange key.Binding
	Refresh     key.Binding
	Up          key.Binding
	Down        key.Binding
}

// defaultKeyMap returns the default key bindings for the stats tab.
func defaultKeyMap() keyMap {
	return keyMap{
		ToggleRange: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle time range"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// Model represents the stats tab state.
type Model struct {
	state    *app.State
	services *services.Manager
	commands *app.Commands
	width    int
	height   int
	keys     keyMap
	viewport viewport.Model

	timeRange models.TimeRange
	series    []models.DailyStat
	loading   bool
}

// New creates a new stats model.
func New(state *app.State, svc *services.Manager, commands *app.Commands) *Model {
	return &Model{
		state:     state,
		services:  svc,
		commands:  commands,
		keys:      defaultKeyMap(),
		viewport:  viewport.New(0, 0),
		timeRange: models.TimeRangeWeekly,
		loading:   true,
	}
}

// Init initializes the stats tab.
func (m *Model) Init() tea.Cmd {
	return m.commands.LoadStats(m.timeRange)
}

// Update handles messages for the stats tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case app.StatsLoadedMsg:
		if msg.TimeRange == m.timeRange {
			m.series = msg.Series
			m.loading = false
		}

	case app.LogLoadedMsg:
		// Log changed elsewhere, keep the aggregates in step.
		return m, m.commands.LoadStats(m.timeRange)

	case app.TabSwitchMsg:
		if msg.Tab == app.TabStats {
			return m, m.commands.LoadStats(m.timeRange)
		}

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (app.Tab, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleRange):
		m.timeRange = m.timeRange.Next()
		m.loading = true
		return m, m.commands.LoadStats(m.timeRange)

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.commands.LoadStats(m.timeRange)

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
}

// SetSize sets the available size for the stats tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.ToggleRange,
		m.keys.Refresh,
	}
}
