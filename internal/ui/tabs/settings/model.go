// Package settings provides the settings tab for the feeding interval and
// notification contacts.
package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cjjknight/baby-feeding/internal/app"
	"github.com/cjjknight/baby-feeding/internal/models"
	"github.com/cjjknight/baby-feeding/internal/services"
)

// addStep tracks progress through the add-contact form.
type addStep int

const (
	stepNone addStep = iota
	stepGivenName
	stepFamilyName
	stepPhone
)

// keyMap defines the key bindings specific to the settings tab.
type keyMap struct {
	IncInterval key.Binding
	DecInterval key.Binding
	Up          key.Binding
	Down        key.Binding
	AddContact  key.Binding
	DelContact  key.Binding
	Search      key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
}

// defaultKeyMap returns the default key bindings for the settings tab.
func defaultKeyMap() keyMap {
	return keyMap{
		IncInterval: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "longer interval"),
		),
		DecInterval: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shorter interval"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous contact"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next contact"),
		),
		AddContact: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add contact"),
		),
		DelContact: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "remove contact"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search contacts"),
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

// Model represents the settings tab state.
type Model struct {
	state    *app.State
	services *services.Manager
	commands *app.Commands
	width    int
	height   int
	keys     keyMap

	contacts []models.Contact
	filtered []models.Contact
	selected int

	step      addStep
	input     textinput.Model
	draft     models.Contact
	searching bool
	query     string
}

// New creates a new settings model.
func New(state *app.State, svc *services.Manager, commands *app.Commands) *Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 32

	return &Model{
		state:    state,
		services: svc,
		commands: commands,
		keys:     defaultKeyMap(),
		input:    ti,
	}
}

// Init initializes the settings tab.
func (m *Model) Init() tea.Cmd {
	return m.commands.LoadContacts()
}

// Update handles messages for the settings tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case app.ContactsLoadedMsg:
		m.contacts = msg.Contacts
		m.filtered = nil
		m.query = ""
		if m.selected >= len(m.visible()) {
			m.selected = max(len(m.visible())-1, 0)
		}

	case app.ContactSearchResultMsg:
		if m.searching || m.query != "" {
			m.filtered = msg.Contacts
			m.selected = 0
		}

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// visible returns the contact list currently shown, honoring any search.
func (m *Model) visible() []models.Contact {
	if m.query != "" {
		return m.filtered
	}
	return m.contacts
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (app.Tab, tea.Cmd) {
	if m.step != stepNone {
		return m.handleFormKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.IncInterval):
		return m, m.commands.SetInterval(m.state.GetInterval() + 1)

	case key.Matches(msg, m.keys.DecInterval):
		return m, m.commands.SetInterval(m.state.GetInterval() - 1)

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.visible())-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.AddContact):
		m.step = stepGivenName
		m.draft = models.Contact{}
		m.input.SetValue("")
		m.input.Placeholder = "Given name"
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.DelContact):
		visible := m.visible()
		if m.selected < len(visible) {
			return m, m.removeContactCmd(visible[m.selected].ID)
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.input.SetValue(m.query)
		m.input.Placeholder = "Name or phone"
		m.input.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (app.Tab, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.query = ""
		m.filtered = nil
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	query := strings.TrimSpace(m.input.Value())
	if query != m.query {
		m.query = query
		if query == "" {
			m.filtered = nil
			return m, cmd
		}
		return m, tea.Batch(cmd, m.commands.SearchContacts(query))
	}

	return m, cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (app.Tab, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.step = stepNone
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.input.Value())
		switch m.step {
		case stepGivenName:
			m.draft.GivenName = value
			m.step = stepFamilyName
			m.input.SetValue("")
			m.input.Placeholder = "Family name"
		case stepFamilyName:
			m.draft.FamilyName = value
			m.step = stepPhone
			m.input.SetValue("")
			m.input.Placeholder = "Phone number"
		case stepPhone:
			m.draft.PhoneNumber = value
			m.step = stepNone
			m.input.Blur()
			return m, m.addContactCmd(m.draft)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) addContactCmd(contact models.Contact) tea.Cmd {
	return func() tea.Msg {
		if contact.FullName() == "" && contact.PhoneNumber == "" {
			return app.ErrorMsg{Error: fmt.Errorf("contact needs a name or a phone number")}
		}
		if err := m.services.Contacts().Add(contact); err != nil {
			return app.ErrorMsg{Error: err}
		}
		return app.AddNotificationMsg{
			Type:     app.NotificationSuccess,
			Message:  fmt.Sprintf("Added %s", contact.FullName()),
			Duration: app.DefaultNotificationDuration,
		}
	}
}

func (m *Model) removeContactCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.services.Contacts().Remove(id); err != nil {
			return app.ErrorMsg{Error: err}
		}
		return app.AddNotificationMsg{
			Type:     app.NotificationSuccess,
			Message:  "Contact removed",
			Duration: app.DefaultNotificationDuration,
		}
	}
}

// SetSize sets the available size for the settings tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.IncInterval,
		m.keys.DecInterval,
		m.keys.AddContact,
		m.keys.DelContact,
		m.keys.Search,
	}
}
