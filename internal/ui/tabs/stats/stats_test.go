package stats

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

func newTestModel(t *testing.T) (*Model, *services.Manager) {
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

	m := New(app.NewState(), mgr, app.NewCommands(mgr))
	m.SetSize(100, 40)
	return m, mgr
}

func TestInit_LoadsStats(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init returned nil command")
	}

	msg := cmd()
	loaded, ok := msg.(app.StatsLoadedMsg)
	if !ok {
		t.Fatalf("Init command produced %T, want StatsLoadedMsg", msg)
	}
	if loaded.TimeRange != models.TimeRangeWeekly {
		t.Errorf("initial range = %v, want Weekly", loaded.TimeRange)
	}
}

func TestView_Empty(t *testing.T) {
	m, _ := newTestModel(t)

	tab, _ := m.Update(app.StatsLoadedMsg{TimeRange: models.TimeRangeWeekly})
	m = tab.(*Model)

	view := m.View()
	if !strings.Contains(view, "No feedings recorded yet") {
		t.Errorf("empty view = %q", view)
	}
}

func TestView_WithSeries(t *testing.T) {
	m, mgr := newTestModel(t)

	mgr.AddMissedFeeding(time.Now().Add(-3 * time.Hour))

	tab, _ := m.Update(app.StatsLoadedMsg{
		Series:    mgr.DailyStats(models.TimeRangeWeekly),
		TimeRange: models.TimeRangeWeekly,
	})
	m = tab.(*Model)

	view := m.View()
	if !strings.Contains(view, "Meals Per Day") {
		t.Error("view missing chart card")
	}
	if !strings.Contains(view, "Daily Detail") {
		t.Error("view missing detail table")
	}
	if !strings.Contains(view, "Weekly") {
		t.Error("view missing range indicator")
	}
}

func TestToggleRange(t *testing.T) {
	m, _ := newTestModel(t)

	tab, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = tab.(*Model)
	if m.timeRange != models.TimeRangeMonthly {
		t.Errorf("timeRange = %v after toggle, want Monthly", m.timeRange)
	}
	if cmd == nil {
		t.Fatal("toggle produced no reload command")
	}

	msg := cmd()
	loaded, ok := msg.(app.StatsLoadedMsg)
	if !ok {
		t.Fatalf("toggle command produced %T, want StatsLoadedMsg", msg)
	}
	if loaded.TimeRange != models.TimeRangeMonthly {
		t.Errorf("reloaded range = %v, want Monthly", loaded.TimeRange)
	}
}

func TestStaleResultsIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m.timeRange = models.TimeRangeMonthly
	m.loading = true

	// A result for a range we are no longer showing must not clear loading
	tab, _ := m.Update(app.StatsLoadedMsg{
		Series:    []models.DailyStat{{NumberOfMeals: 1}},
		TimeRange: models.TimeRangeWeekly,
	})
	m = tab.(*Model)

	if !m.loading {
		t.Error("stale stats result was applied")
	}
	if len(m.series) != 0 {
		t.Error("stale series was stored")
	}
}

func TestRenderSparseAxis(t *testing.T) {
	labels := []string{"", "Mar", "", "Jun"}
	got := renderSparseAxis(labels, 40)
	if !strings.Contains(got, "Mar") || !strings.Contains(got, "Jun") {
		t.Errorf("axis = %q", got)
	}
	if idxMar, idxJun := strings.Index(got, "Mar"), strings.Index(got, "Jun"); idxMar >= idxJun {
		t.Errorf("labels out of order: %q", got)
	}
}
