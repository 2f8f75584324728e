package components

import (
	"strings"
	"testing"
	"time"

	"github.com/cjjknight/baby-feeding/internal/models"
)

func TestRenderLineChart(t *testing.T) {
	if got := RenderLineChart(nil, 40, 8, "caption"); !strings.Contains(got, "No data") {
		t.Errorf("empty data chart = %q", got)
	}

	got := RenderLineChart([]float64{1, 3, 2, 5, 4}, 40, 8, "meals")
	if got == "" {
		t.Error("RenderLineChart returned empty string")
	}
	if !strings.Contains(got, "meals") {
		t.Error("caption missing from chart")
	}
}

func TestRenderBarChart(t *testing.T) {
	if got := RenderBarChart(nil, nil, 40); got != "" {
		t.Errorf("empty bar chart = %q, want empty", got)
	}

	got := RenderBarChart([]float64{1, 2, 3}, []string{"a", "b", "c"}, 40)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("bar chart has %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[2], "3.0") {
		t.Errorf("last bar missing value: %q", lines[2])
	}
}

func TestRenderTimeline(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)

	t.Run("empty log", func(t *testing.T) {
		got := RenderTimeline(nil, now, 48)
		if !strings.Contains(got, "0 meals in the past 24 hours") {
			t.Errorf("timeline header = %q", got)
		}
	})

	t.Run("counts only last day", func(t *testing.T) {
		log := models.FeedingLog{
			now.Add(-2 * time.Hour),
			now.Add(-23 * time.Hour),
			now.Add(-30 * time.Hour), // outside the window
		}
		got := RenderTimeline(log, now, 48)
		if !strings.Contains(got, "2 meals in the past 24 hours") {
			t.Errorf("timeline header = %q", got)
		}
		if !strings.Contains(got, "●") {
			t.Error("timeline has no markers")
		}
	})

	t.Run("singular header", func(t *testing.T) {
		got := RenderTimeline(models.FeedingLog{now.Add(-time.Hour)}, now, 48)
		if !strings.Contains(got, "1 meal in the past 24 hours") {
			t.Errorf("timeline header = %q", got)
		}
	})
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil, 10); got != "" {
		t.Errorf("empty sparkline = %q, want empty", got)
	}

	got := RenderSparkline([]float64{0, 1, 2, 3}, 4)
	if got == "" {
		t.Error("RenderSparkline returned empty string")
	}
}

func TestDayLabels(t *testing.T) {
	t.Run("weekly labels every day", func(t *testing.T) {
		series := []models.DailyStat{
			{Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)},
			{Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)},
		}
		labels := DayLabels(series, models.TimeRangeWeekly)
		if labels[0] != "03/01" || labels[1] != "03/02" {
			t.Errorf("labels = %v", labels)
		}
	})

	t.Run("annual labels quarter months only", func(t *testing.T) {
		series := []models.DailyStat{
			{Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)},  // Feb: not divisible by 3
			{Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)},  // Mar: labeled
			{Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)}, // mid-month: not labeled
			{Date: time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)},  // Jun: labeled
		}
		labels := DayLabels(series, models.TimeRangeAnnual)
		want := []string{"", "Mar", "", "Jun"}
		for i := range want {
			if labels[i] != want[i] {
				t.Errorf("label %d = %q, want %q", i, labels[i], want[i])
			}
		}
	})
}

func TestRenderLegend(t *testing.T) {
	got := RenderLegend([]LegendItem{
		{Label: "Meals", Color: "212"},
	})
	if !strings.Contains(got, "Meals") {
		t.Errorf("legend = %q", got)
	}
}
