package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cjjknight/baby-feeding/internal/models"
	"github.com/cjjknight/baby-feeding/internal/ui/components"
	"github.com/cjjknight/baby-feeding/internal/ui/styles"
)

// View renders the stats tab.
func (m *Model) View() string {
	if m.loading {
		return styles.DocStyle.
			Width(m.width).
			Height(m.height).
			Render(styles.HelpStyle.Render("Crunching the numbers..."))
	}

	if len(m.series) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			styles.TitleStyle.Render("Summary"),
			"",
			styles.HelpStyle.Render("No feedings recorded yet."),
			styles.HelpStyle.Render("Daily statistics will appear once feedings are logged."),
		)
		return styles.DocStyle.
			Width(m.width).
			Height(m.height).
			Render(content)
	}

	sections := []string{
		m.renderHeader(),
		m.renderMealsChart(),
		m.renderDayTable(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("Summary")

	rangeStyle := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary)
	rangeIndicator := rangeStyle.Render(fmt.Sprintf("[t] %s", m.timeRange.String()))

	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", rangeIndicator)

	first := m.series[0].Date
	last := m.series[len(m.series)-1].Date
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("%s → %s (%d days)",
		first.Format("Jan 2, 2006"), last.Format("Jan 2, 2006"), len(m.series)))

	return lipgloss.JoinVertical(lipgloss.Left, header, subtitle, "")
}

func (m *Model) renderMealsChart() string {
	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Meals Per Day"), "")

	meals := make([]float64, len(m.series))
	for i, s := range m.series {
		meals[i] = float64(s.NumberOfMeals)
	}

	chartWidth := max(cardWidth-12, 30)
	chart := components.RenderLineChart(meals, chartWidth, 8,
		fmt.Sprintf("%s meal counts", m.timeRange.String()))

	for _, line := range strings.Split(chart, "\n") {
		rows = append(rows, "  "+line)
	}

	if m.timeRange == models.TimeRangeAnnual {
		labels := components.DayLabels(m.series, m.timeRange)
		axis := renderSparseAxis(labels, chartWidth)
		if axis != "" {
			rows = append(rows, "  "+styles.HelpStyle.Render(axis))
		}
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderDayTable() string {
	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Daily Detail"), "")
	rows = append(rows, styles.HelpStyle.Render(
		fmt.Sprintf("  %-16s %6s %10s %13s", "Date", "Meals", "Daytime", "Longest gap")))

	// Newest day first
	for i := len(m.series) - 1; i >= 0; i-- {
		s := m.series[i]
		rows = append(rows, fmt.Sprintf("  %-16s %6d %9.0f%% %11.1fh",
			s.Date.Format("Mon, Jan 2"),
			s.NumberOfMeals,
			s.PercentDaytime,
			s.LongestGapHours,
		))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderSparseAxis spreads non-empty labels across a line at roughly the
// positions of their data points.
func renderSparseAxis(labels []string, width int) string {
	if len(labels) == 0 {
		return ""
	}

	axis := []rune(strings.Repeat(" ", width))
	for i, label := range labels {
		if label == "" {
			continue
		}
		pos := i * width / len(labels)
		for j, r := range label {
			if pos+j < len(axis) {
				axis[pos+j] = r
			}
		}
	}

	out := strings.TrimRight(string(axis), " ")
	return out
}
