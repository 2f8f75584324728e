package app

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/key"

	"github.com/cjjknight/baby-feeding/internal/config"
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

// stubTab is a minimal Tab for exercising the root model.
type stubTab struct {
	updates int
	width   int
	height  int
}

func (s *stubTab) Init() tea.Cmd { return nil }
func (s *stubTab) Update(msg tea.Msg) (Tab, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubTab) View() string { return "stub content" }
func (s *stubTab) SetSize(width, height int) {
	s.width = width
	s.height = height
}
func (s *stubTab) ShortHelp() []key.Binding { return nil }

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(newTestManager(t), time.Second)
	m.SetTabs([]Tab{&stubTab{}, &stubTab{}, &stubTab{}, &stubTab{}})
	return m
}

func TestNewModel_SeedsState(t *testing.T) {
	m := newTestModel(t)

	if m.state.GetInterval() != 4 {
		t.Errorf("seeded interval = %d, want 4", m.state.GetInterval())
	}
	if m.activeTab != TabTimer {
		t.Errorf("initial tab = %v, want Timer", m.activeTab)
	}
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Error("Init returned nil")
	}
}

func TestModel_TabSwitching(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	if m.activeTab != TabStats {
		t.Errorf("activeTab = %v after '3', want Stats", m.activeTab)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.activeTab != TabSettings {
		t.Errorf("activeTab = %v after tab, want Settings", m.activeTab)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.activeTab != TabTimer {
		t.Errorf("activeTab = %v, want wrap to Timer", m.activeTab)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.activeTab != TabSettings {
		t.Errorf("activeTab = %v after shift+tab, want Settings", m.activeTab)
	}
}

func TestModel_TickRefreshesDisplay(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(TickMsg{Time: time.Now()})
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
}

func TestModel_ServiceEventUpdatesState(t *testing.T) {
	m := newTestModel(t)

	m.Update(ServiceEventMsg{Event: services.IntervalChangedEvent{Hours: 7}})
	if m.state.GetInterval() != 7 {
		t.Errorf("interval = %d after event, want 7", m.state.GetInterval())
	}
}

func TestModel_NotificationLifecycle(t *testing.T) {
	m := newTestModel(t)

	m.Update(AddNotificationMsg{
		Type:     NotificationSuccess,
		Message:  "saved",
		Duration: time.Minute,
	})
	active := m.state.GetNotifications()
	if len(active) != 1 {
		t.Fatalf("notifications = %d, want 1", len(active))
	}

	m.Update(RemoveNotificationMsg{ID: active[0].ID})
	if len(m.state.GetNotifications()) != 0 {
		t.Error("notification not removed")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t)

	// Before the first WindowSizeMsg the model renders a loading hint
	if view := m.View(); view == "" {
		t.Error("View returned empty string before sizing")
	}

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	if !strings.Contains(view, "Timer") {
		t.Error("navbar missing Timer tab")
	}
	if !strings.Contains(view, "stub content") {
		t.Error("active tab content missing")
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.showHelp {
		t.Fatal("? did not open help")
	}
	if view := m.View(); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Error("help overlay missing from view")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Error("escape did not close help")
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if msg := cmd(); msg == nil {
		t.Error("quit command produced no message")
	}
}

func TestTabID_String(t *testing.T) {
	tests := []struct {
		id   TabID
		want string
	}{
		{TabTimer, "Timer"},
		{TabFeedings, "Feedings"},
		{TabStats, "Stats"},
		{TabSettings, "Settings"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
