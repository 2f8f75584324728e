package settings

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cjjknight/baby-feeding/internal/app"
	"github.com/cjjknight/baby-feeding/internal/config"
	"github.com/cjjknight/baby-feeding/internal/models"
	"github.com/cjjknight/baby-feeding/internal/services"
)

func newTestModel(t *testing.T) (*Model, *services.Manager, *app.State) {
	t.Helper()
	tmp := t.TempDir()
	mgr, err := services.NewManager(&config.Config{
		DatabasePath:  filepath.Join(tmp, "feedings.db"),
		ContactsPath:  filepath.Join(tmp, "contacts.json"),
		IntervalHours: 4,
		TickInterval:  time.Second,
	})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	t.Cleanup(func() { _ = mgr.Close() })

	state := app.NewState()
	state.SetInterval(mgr.IntervalHours())

	m := New(state, mgr, app.NewCommands(mgr))
	m.SetSize(100, 40)
	return m, mgr, state
}

func TestView(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Feeding Interval") {
		t.Error("view missing interval card")
	}
	if !strings.Contains(view, "4 hours") {
		t.Error("view missing current interval")
	}
	if !strings.Contains(view, "No contacts yet") {
		t.Error("view missing empty contacts hint")
	}
}

func TestIntervalKeys(t *testing.T) {
	m, mgr, state := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if cmd == nil {
		t.Fatal("+ produced no command")
	}

	msg := cmd()
	changed, ok := msg.(app.IntervalChangedMsg)
	if !ok {
		t.Fatalf("command produced %T, want IntervalChangedMsg", msg)
	}
	if changed.Error != nil {
		t.Fatalf("interval change failed: %v", changed.Error)
	}
	if mgr.IntervalHours() != 5 {
		t.Errorf("IntervalHours = %d, want 5", mgr.IntervalHours())
	}

	// Pushing past the maximum fails
	state.SetInterval(models.MaxIntervalHours)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	msg = cmd()
	if changed, ok := msg.(app.IntervalChangedMsg); !ok || changed.Error == nil {
		t.Error("interval above the maximum should fail")
	}
}

func TestContactsLoaded(t *testing.T) {
	m, _, _ := newTestModel(t)

	tab, _ := m.Update(app.ContactsLoadedMsg{Contacts: []models.Contact{
		{ID: "ct_1", GivenName: "Jamie", PhoneNumber: "555-0100"},
	}})
	m = tab.(*Model)

	view := m.View()
	if !strings.Contains(view, "Jamie") {
		t.Error("view missing loaded contact")
	}
}

func TestAddContactForm(t *testing.T) {
	m, mgr, _ := newTestModel(t)

	tab, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = tab.(*Model)
	if m.step != stepGivenName {
		t.Fatalf("step = %d, want stepGivenName", m.step)
	}

	m.input.SetValue("Jamie")
	tab, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tab.(*Model)
	if m.step != stepFamilyName {
		t.Fatalf("step = %d, want stepFamilyName", m.step)
	}

	m.input.SetValue("Knight")
	tab, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tab.(*Model)
	if m.step != stepPhone {
		t.Fatalf("step = %d, want stepPhone", m.step)
	}

	m.input.SetValue("555-0100")
	tab, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tab.(*Model)
	if m.step != stepNone {
		t.Error("form still open after final confirm")
	}
	if cmd == nil {
		t.Fatal("final confirm produced no command")
	}

	if msg := cmd(); msg == nil {
		t.Fatal("add command produced no message")
	}
	list := mgr.Contacts().List()
	if len(list) != 1 || list[0].FullName() != "Jamie Knight" {
		t.Errorf("contacts = %+v", list)
	}
}

func TestFormCancel(t *testing.T) {
	m, _, _ := newTestModel(t)

	tab, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = tab.(*Model)

	tab, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = tab.(*Model)
	if m.step != stepNone {
		t.Error("escape did not close the form")
	}
}

func TestSearchFlow(t *testing.T) {
	m, mgr, _ := newTestModel(t)

	if err := mgr.Contacts().Add(models.Contact{ID: "ct_1", GivenName: "Jamie", PhoneNumber: "555-0100"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := mgr.Contacts().Add(models.Contact{ID: "ct_2", GivenName: "Alex", PhoneNumber: "555-0199"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	tab, _ := m.Update(app.ContactsLoadedMsg{Contacts: mgr.Contacts().List()})
	m = tab.(*Model)

	// Open search and type a query
	tab, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = tab.(*Model)
	if !m.searching {
		t.Fatal("/ did not open search")
	}

	tab, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = tab.(*Model)
	if cmd == nil {
		t.Fatal("typing produced no search command")
	}

	// Run the batched commands and feed results back
	found := false
	for _, msg := range drainCmd(cmd) {
		if result, ok := msg.(app.ContactSearchResultMsg); ok {
			found = true
			tab, _ = m.Update(result)
			m = tab.(*Model)
		}
	}
	if !found {
		t.Fatal("no ContactSearchResultMsg produced")
	}

	visible := m.visible()
	if len(visible) != 1 || visible[0].ID != "ct_1" {
		t.Errorf("visible = %+v, want only Jamie", visible)
	}
}

// drainCmd executes a command tree and collects the produced messages.
func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drainCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
