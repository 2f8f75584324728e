// Package app implements the main Bubble Tea application with tab-based navigation.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cjjknight/baby-feeding/internal/services"
	"github.com/cjjknight/baby-feeding/internal/ui/styles"
)

// TabID represents the identifier for a tab in the application.
type TabID int

const (
	// TabTimer is the ID for the feeding timer tab.
	TabTimer TabID = iota
	// TabFeedings is the ID for the feedings list tab.
	TabFeedings
	// TabStats is the ID for the summary statistics tab.
	TabStats
	// TabSettings is the ID for the settings tab.
	TabSettings
)

// String returns the string representation of the TabID.
func (t TabID) String() string {
	switch t {
	case TabTimer:
		return "Timer"
	case TabFeedings:
		return "Feedings"
	case TabStats:
		return "Stats"
	case TabSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Tab defines the interface that all tabs must implement.
type Tab interface {
	// Init initializes the tab and returns any initial commands.
	Init() tea.Cmd

	// Update handles messages and returns the updated tab and any commands.
	Update(msg tea.Msg) (Tab, tea.Cmd)

	// View renders the tab content.
	View() string

	// SetSize sets the available size for the tab.
	SetSize(width, height int)

	// ShortHelp returns key bindings for the short help view.
	ShortHelp() []key.Binding
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "timer")),
		Tab2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "feedings")),
		Tab3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "stats")),
		Tab4:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "settings")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Styles defines the application styles.
type Styles struct {
	TabBar       lipgloss.Style
	ActiveTab    lipgloss.Style
	InactiveTab  lipgloss.Style
	Content      lipgloss.Style
	Help         lipgloss.Style
	Toast        lipgloss.Style
	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	Notification map[NotificationType]lipgloss.Style
}

// DefaultStyles returns the default application styles.
func DefaultStyles() Styles {
	subtle := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	highlight := lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	success := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warning := lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FF8C00"}
	errorColor := lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"}
	info := lipgloss.AdaptiveColor{Light: "#0087D7", Dark: "#5FAFFF"}

	return Styles{
		TabBar: lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).BorderForeground(subtle),
		ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(highlight).Padding(0, 2),
		InactiveTab: lipgloss.NewStyle().Foreground(subtle).Padding(0, 2),
		Content:     lipgloss.NewStyle().Padding(1, 2),
		Help:        lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		Toast:       styles.ToastStyle,
		Title:       lipgloss.NewStyle().Bold(true).Foreground(highlight),
		Subtle:      lipgloss.NewStyle().Foreground(subtle),
		Highlight:   lipgloss.NewStyle().Foreground(highlight),
		Notification: map[NotificationType]lipgloss.Style{
			NotificationSuccess: lipgloss.NewStyle().Foreground(success).Padding(0, 1),
			NotificationError:   lipgloss.NewStyle().Foreground(errorColor).Bold(true).Padding(0, 1),
			NotificationWarning: lipgloss.NewStyle().Foreground(warning).Padding(0, 1),
			NotificationInfo:    lipgloss.NewStyle().Foreground(info).Padding(0, 1),
		},
	}
}

// Model is the main application model.
type Model struct {
	// Tab management
	activeTab TabID
	tabs      []Tab
	tabNames  []string

	// Shared state
	state    *State
	services *services.Manager
	commands *Commands
	keymap   KeyMap
	styles   Styles

	// Window dimensions
	width  int
	height int

	// UI state
	showHelp bool
	ready    bool

	tickInterval time.Duration

	// Service subscription
	eventChannel chan services.ServiceEvent
}

// NewModel initializes a new application model.
func NewModel(mgr *services.Manager, tickInterval time.Duration) *Model {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}

	state := NewState()
	state.SetLog(mgr.FeedingLog())
	state.SetInterval(mgr.IntervalHours())
	state.SetContacts(mgr.Contacts().List())
	state.SetDisplay(mgr.DisplayState(time.Now()))

	return &Model{
		activeTab:    TabTimer,
		tabNames:     []string{"Timer", "Feedings", "Stats", "Settings"},
		tabs:         make([]Tab, 4), // Placeholder - tabs will be set externally
		state:        state,
		services:     mgr,
		commands:     NewCommands(mgr),
		keymap:       DefaultKeyMap(),
		styles:       DefaultStyles(),
		tickInterval: tickInterval,
	}
}

// SetTabs sets the tabs for the model.
func (m *Model) SetTabs(tabs []Tab) {
	m.tabs = tabs
	if m.width > 0 && m.height > 0 {
		m.updateTabSizes()
	}
}

// GetState returns the application state.
func (m *Model) GetState() *State {
	return m.state
}

// GetCommands returns the commands helper.
func (m *Model) GetCommands() *Commands {
	return m.commands
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.tickInterval),
		subscribeToServicesCmd(m.services),
	}

	for _, tab := range m.tabs {
		if tab != nil {
			cmds = append(cmds, tab.Init())
		}
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateTabSizes()

	case tea.KeyMsg:
		if cmd := m.handleKeyMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case TickMsg:
		cmds = append(cmds, m.handleTick(msg))

	case SubscriptionEventMsg:
		m.eventChannel = msg.Channel
		cmds = append(cmds, waitForServiceEventCmd(m.eventChannel))

	case ServiceEventMsg:
		cmds = append(cmds, m.handleServiceEventMsg(msg)...)

	case FeedRecordedMsg:
		cmds = append(cmds, m.handleFeedRecorded(msg)...)

	case FeedEditedMsg:
		if msg.Error != nil {
			cmds = append(cmds, notifyWarningCmd(fmt.Sprintf("Feeding not found: %v", msg.Error)))
		} else {
			cmds = append(cmds, notifySuccessCmd("Feeding updated"))
		}

	case FeedDeletedMsg:
		cmds = append(cmds, notifySuccessCmd("Feeding deleted"))

	case MissedFeedAddedMsg:
		cmds = append(cmds, notifySuccessCmd("Missed feeding added"))

	case IntervalChangedMsg:
		if msg.Error != nil {
			cmds = append(cmds, notifyErrorCmd(msg.Error.Error()))
		} else {
			m.state.SetInterval(msg.Hours)
			cmds = append(cmds, notifySuccessCmd(fmt.Sprintf("Feeding interval set to %d hours", msg.Hours)))
		}

	case AddNotificationMsg:
		id := m.state.AddNotification(msg.Type, msg.Message, msg.Duration)
		if msg.Duration > 0 {
			cmds = append(cmds, clearNotificationCmd(id, msg.Duration))
		}

	case RemoveNotificationMsg:
		m.state.RemoveNotification(msg.ID)

	case ErrorMsg:
		cmds = append(cmds, notifyErrorCmd(msg.Error.Error()))

	case TabSwitchMsg:
		m.activeTab = msg.Tab
		m.updateTabSizes()

	case ToggleHelpMsg:
		m.showHelp = !m.showHelp
	}

	if cmd := m.updateActiveTab(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleTick re-derives the live display state without mutating the log.
func (m *Model) handleTick(msg TickMsg) tea.Cmd {
	m.state.SetDisplay(m.services.DisplayState(msg.Time))
	m.state.ClearExpiredNotifications()
	return tickCmd(m.tickInterval)
}

func (m *Model) handleServiceEventMsg(msg ServiceEventMsg) []tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.handleServiceEvent(msg.Event); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.eventChannel != nil {
		cmds = append(cmds, waitForServiceEventCmd(m.eventChannel))
	}
	return cmds
}

func (m *Model) handleServiceEvent(event services.ServiceEvent) tea.Cmd {
	switch e := event.(type) {
	case services.LogChangedEvent:
		m.state.SetLog(e.Log)
		m.state.SetDisplay(m.services.DisplayState(time.Now()))
		return loadLogCmd(m.services)

	case services.IntervalChangedEvent:
		m.state.SetInterval(e.Hours)

	case services.ContactsChangedEvent:
		m.state.SetContacts(e.Contacts)
		return loadContactsCmd(m.services)

	case services.MessageDraftEvent:
		return notifyInfoCmd(e.Draft.String())

	case services.ErrorEvent:
		return notifyErrorCmd(fmt.Sprintf("[%s] %v", e.Service, e.Error))
	}

	return nil
}

func (m *Model) handleFeedRecorded(msg FeedRecordedMsg) []tea.Cmd {
	if msg.Error != nil {
		// The too-soon rejection is a blocking notice, not a crash
		return []tea.Cmd{notifyWarningCmd(msg.Error.Error())}
	}
	return []tea.Cmd{
		notifySuccessCmd(fmt.Sprintf("Feeding logged at %s", msg.At.Format("3:04 PM"))),
	}
}

func (m *Model) updateActiveTab(msg tea.Msg) tea.Cmd {
	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		var cmd tea.Cmd
		m.tabs[m.activeTab], cmd = m.tabs[m.activeTab].Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) updateTabSizes() {
	contentHeight := m.height - 5
	contentHeight = max(0, contentHeight)

	for _, tab := range m.tabs {
		if tab != nil {
			tab.SetSize(m.width, contentHeight)
		}
	}
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Global keybindings (work regardless of tab)
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return nil

	case key.Matches(msg, m.keymap.Tab1):
		m.activeTab = TabTimer
		m.updateTabSizes()
		return nil

	case key.Matches(msg, m.keymap.Tab2):
		m.activeTab = TabFeedings
		m.updateTabSizes()
		return nil

	case key.Matches(msg, m.keymap.Tab3):
		m.activeTab = TabStats
		m.updateTabSizes()
		return nil

	case key.Matches(msg, m.keymap.Tab4):
		m.activeTab = TabSettings
		m.updateTabSizes()
		return nil

	case key.Matches(msg, m.keymap.NextTab):
		if !m.showHelp {
			m.activeTab = TabID((int(m.activeTab) + 1) % len(m.tabs))
			m.updateTabSizes()
		}
		return nil

	case key.Matches(msg, m.keymap.PrevTab):
		if !m.showHelp {
			m.activeTab = TabID((int(m.activeTab) - 1 + len(m.tabs)) % len(m.tabs))
			m.updateTabSizes()
		}
		return nil

	case key.Matches(msg, m.keymap.Escape):
		if m.showHelp {
			m.showHelp = false
			return nil
		}
	}

	// Let the tab handle other keys
	return nil
}

// View renders the application UI.
func (m *Model) View() string {
	var b strings.Builder

	if m.width > 0 {
		b.WriteString(m.renderNavbar())
		b.WriteString("\n")
	}

	if !m.ready {
		b.WriteString(m.styles.Content.Render("Loading..."))
		return b.String()
	}

	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		b.WriteString(m.tabs[m.activeTab].View())
	}

	mainView := b.String()

	if m.showHelp {
		helpView := m.renderHelp()
		mainView = m.overlayCentered(mainView, helpView)
	}

	notifications := m.renderNotifications()
	if len(notifications) > 0 {
		return m.overlayToasts(mainView, notifications)
	}

	return mainView
}

func (m *Model) overlayCentered(mainView string, overlay string) string {
	mainLines := strings.Split(mainView, "\n")
	overlayLines := strings.Split(overlay, "\n")

	overlayHeight := len(overlayLines)
	overlayWidth := lipgloss.Width(overlay)

	// Calculate center position
	y := (m.height - overlayHeight) / 2
	x := (m.width - overlayWidth) / 2

	if y < 0 {
		y = 0
	}
	if x < 0 {
		x = 0
	}

	for i, overlayLine := range overlayLines {
		mainY := y + i
		if mainY >= len(mainLines) {
			break
		}

		mainLine := mainLines[mainY]

		// Truncate main line to the start of the overlay
		left := ansi.Truncate(mainLine, x, "")

		// Skip 'x + overlayWidth' visual cells for the right part
		right := ansi.TruncateLeft(mainLine, x+overlayWidth, "")

		// If the line was shorter than the overlay start, pad it
		if lipgloss.Width(left) < x {
			left += strings.Repeat(" ", x-lipgloss.Width(left))
		}

		mainLines[mainY] = left + overlayLine + right
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) renderNavbar() string {
	var tabs []string

	for i, name := range m.tabNames {
		if TabID(i) == m.activeTab {
			tabs = append(tabs, m.styles.ActiveTab.Render(fmt.Sprintf("[%d] %s", i+1, name)))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(fmt.Sprintf(" %d  %s", i+1, name)))
		}
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	return m.styles.TabBar.Width(m.width).Render(tabBar)
}

func (m *Model) renderNotifications() []string {
	notifications := m.state.GetNotifications()
	if len(notifications) == 0 {
		return nil
	}

	prefixes := map[NotificationType]string{
		NotificationSuccess: "[OK]",
		NotificationError:   "[ERR]",
		NotificationWarning: "[WARN]",
		NotificationInfo:    "[INFO]",
	}

	var toasts []string
	for _, n := range notifications {
		style := m.styles.Notification[n.Type]
		content := style.Render(fmt.Sprintf("%s %s", prefixes[n.Type], n.Message))
		toasts = append(toasts, m.styles.Toast.Render(content))
	}

	return toasts
}

func (m *Model) overlayToasts(mainView string, toasts []string) string {
	if len(toasts) == 0 {
		return mainView
	}

	toastStack := lipgloss.JoinVertical(lipgloss.Right, toasts...)
	toastLines := strings.Split(toastStack, "\n")
	mainLines := strings.Split(mainView, "\n")

	toastWidth := lipgloss.Width(toastStack)
	startX := max(m.width-toastWidth-2, 0)

	startY := 2

	for i, toastLine := range toastLines {
		lineIdx := startY + i
		if lineIdx >= len(mainLines) {
			break
		}

		mainLine := mainLines[lineIdx]
		mainLineWidth := lipgloss.Width(mainLine)

		if mainLineWidth < startX {
			padding := strings.Repeat(" ", startX-mainLineWidth)
			mainLines[lineIdx] = mainLine + padding + toastLine
		} else {
			truncated := ansi.Truncate(mainLine, startX, "")
			mainLines[lineIdx] = truncated + toastLine
		}
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) renderHelp() string {
	var lines []string

	lines = append(lines, m.styles.Title.Render("Keyboard Shortcuts"))
	lines = append(lines, "")

	lines = append(lines, m.styles.Highlight.Render("Navigation"))
	lines = append(lines, "  1-4        Switch tabs")
	lines = append(lines, "  Tab        Next tab")
	lines = append(lines, "  Shift+Tab  Previous tab")
	lines = append(lines, "")

	lines = append(lines, m.styles.Highlight.Render("Actions"))
	lines = append(lines, "  ?          Toggle help")
	lines = append(lines, "  q/Ctrl+C   Quit")
	lines = append(lines, "")

	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		tabHelp := m.tabs[m.activeTab].ShortHelp()
		if len(tabHelp) > 0 {
			lines = append(lines, m.styles.Highlight.Render(fmt.Sprintf("%s Tab", m.tabNames[m.activeTab])))
			for _, binding := range tabHelp {
				lines = append(lines, fmt.Sprintf("  %-10s %s", binding.Help().Key, binding.Help().Desc))
			}
		}
	}

	lines = append(lines, "")
	lines = append(lines, m.styles.Subtle.Render("Press ? or Esc to close"))

	return styles.HelpPanelStyle.Render(strings.Join(lines, "\n"))
}
