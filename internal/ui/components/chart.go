// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/cjjknight/baby-feeding/internal/models"
	"github.com/cjjknight/baby-feeding/internal/ui/styles"
)

// RenderLineChart creates a single-series ASCII line chart.
func RenderLineChart(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	// Ensure minimum dimensions
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// RenderBarChart creates a simple horizontal bar chart.
func RenderBarChart(values []float64, labels []string, width int) string {
	if len(values) == 0 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	maxLabelLen := 0
	for _, l := range labels {
		if len(l) > maxLabelLen {
			maxLabelLen = len(l)
		}
	}

	barWidth := width - maxLabelLen - 10 // Leave room for label and value
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		paddedLabel := fmt.Sprintf("%*s", maxLabelLen, label)

		barLen := int((v / maxVal) * float64(barWidth))
		if barLen < 0 {
			barLen = 0
		}

		bar := strings.Repeat("█", barLen)
		valueStr := fmt.Sprintf(" %.1f", v)

		lines = append(lines, paddedLabel+" │"+bar+valueStr)
	}

	return strings.Join(lines, "\n")
}

// RenderTimeline renders feedings from the past 24 hours as markers on a
// fixed-width horizontal axis, oldest on the left.
func RenderTimeline(log models.FeedingLog, now time.Time, width int) string {
	if width < 24 {
		width = 24
	}

	start := now.Add(-24 * time.Hour)
	cells := make([]bool, width)
	count := 0
	for _, t := range log {
		if t.Before(start) || t.After(now) {
			continue
		}
		count++
		pos := int(t.Sub(start).Hours() / 24 * float64(width))
		if pos >= width {
			pos = width - 1
		}
		cells[pos] = true
	}

	var axis strings.Builder
	marker := lipgloss.NewStyle().Foreground(styles.Primary)
	for _, hit := range cells {
		if hit {
			axis.WriteString(marker.Render("●"))
		} else {
			axis.WriteString(styles.HelpStyle.Render("─"))
		}
	}

	header := fmt.Sprintf("%d meals in the past 24 hours", count)
	if count == 1 {
		header = "1 meal in the past 24 hours"
	}

	return styles.HelpStyle.Render(header) + "\n" + axis.String()
}

// RenderSparkline creates a compact inline sparkline chart.
func RenderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	sparkChars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var result strings.Builder
	step := float64(len(values)) / float64(width)
	if step < 1 {
		step = 1
	}

	for i := 0; i < width && int(float64(i)*step) < len(values); i++ {
		idx := int(float64(i) * step)
		val := values[idx]
		normalized := int((val / maxVal) * float64(len(sparkChars)-1))
		if normalized >= len(sparkChars) {
			normalized = len(sparkChars) - 1
		}
		if normalized < 0 {
			normalized = 0
		}
		result.WriteRune(sparkChars[normalized])
	}

	return result.String()
}

// DayLabels builds x-axis labels for a day series. In the annual range only
// the first day of months divisible by 3 is labeled, to keep the axis sparse.
func DayLabels(series []models.DailyStat, timeRange models.TimeRange) []string {
	labels := make([]string, len(series))
	for i, stat := range series {
		switch timeRange {
		case models.TimeRangeAnnual:
			if stat.Date.Day() == 1 && int(stat.Date.Month())%3 == 0 {
				labels[i] = stat.Date.Format("Jan")
			}
		default:
			labels[i] = stat.Date.Format("01/02")
		}
	}
	return labels
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}
