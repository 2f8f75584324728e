package feedings

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

func newTestManager(t *testing.T) *services.Manager {
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
	return mgr
}

func newTestModel(t *testing.T) (*Model, *services.Manager) {
	t.Helper()
	mgr := newTestManager(t)
	m := New(app.NewState(), mgr, app.NewCommands(mgr))
	m.SetSize(100, 40)
	return m, mgr
}

func TestSetEntries_NewestFirst(t *testing.T) {
	m, _ := newTestModel(t)

	older := time.Date(2026, 3, 1, 6, 0, 0, 0, time.Local)
	newer := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	m.setEntries(models.FeedingLog{older, newer})

	if len(m.entries) != 2 {
		t.Fatalf("entries length = %d, want 2", len(m.entries))
	}
	if !m.entries[0].Equal(newer) || !m.entries[1].Equal(older) {
		t.Errorf("entries = %v, want newest first", m.entries)
	}
}

func TestSetEntries_ClampsSelection(t *testing.T) {
	m, _ := newTestModel(t)

	m.setEntries(models.FeedingLog{
		time.Date(2026, 3, 1, 6, 0, 0, 0, time.Local),
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local),
	})
	m.selected = 1

	m.setEntries(models.FeedingLog{time.Date(2026, 3, 1, 6, 0, 0, 0, time.Local)})
	if m.selected != 0 {
		t.Errorf("selected = %d after shrink, want 0", m.selected)
	}
}

func TestView_Empty(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "No feedings yet") {
		t.Errorf("empty view = %q", view)
	}
}

func TestView_GroupsByDay(t *testing.T) {
	m, _ := newTestModel(t)
	m.setEntries(models.FeedingLog{
		time.Date(2026, 3, 1, 6, 0, 0, 0, time.Local),
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local),
	})

	view := m.View()
	if !strings.Contains(view, "Mar 1") || !strings.Contains(view, "Mar 2") {
		t.Error("view should show a header per day")
	}
	if !strings.Contains(view, "2 feedings recorded") {
		t.Error("view should show the total count")
	}
}

func TestAddMissedFlow(t *testing.T) {
	m, mgr := newTestModel(t)

	// Open the input
	tab, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = tab.(*Model)
	if m.mode != inputAddMissed {
		t.Fatalf("mode = %d, want inputAddMissed", m.mode)
	}

	// Invalid input keeps the form open with an error
	m.input.SetValue("yesterday")
	tab, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tab.(*Model)
	if m.inputErr == "" {
		t.Error("invalid input produced no error message")
	}
	if cmd != nil {
		t.Error("invalid input should not produce a command")
	}

	// Valid input dispatches the add
	m.input.SetValue("2026-03-01 06:30")
	tab, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tab.(*Model)
	if m.mode != inputNone {
		t.Error("form still open after valid confirm")
	}
	if cmd == nil {
		t.Fatal("valid input produced no command")
	}

	msg := cmd()
	if _, ok := msg.(app.MissedFeedAddedMsg); !ok {
		t.Fatalf("command produced %T, want MissedFeedAddedMsg", msg)
	}
	if len(mgr.FeedingLog()) != 1 {
		t.Errorf("log length = %d, want 1", len(mgr.FeedingLog()))
	}
}

func TestDeleteKey(t *testing.T) {
	m, mgr := newTestModel(t)

	value := time.Date(2026, 3, 1, 6, 0, 0, 0, time.Local)
	mgr.AddMissedFeeding(value)
	m.setEntries(mgr.FeedingLog())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if cmd == nil {
		t.Fatal("delete key produced no command")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("delete command produced no message")
	}
	if len(mgr.FeedingLog()) != 0 {
		t.Errorf("log length = %d after delete, want 0", len(mgr.FeedingLog()))
	}
}

func TestRelativeAge(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{2 * time.Hour, "2h ago"},
		{2*time.Hour + 30*time.Minute, "2h 30m ago"},
		{72 * time.Hour, "3d ago"},
	}

	for _, tt := range tests {
		if got := relativeAge(tt.d); got != tt.want {
			t.Errorf("relativeAge(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
