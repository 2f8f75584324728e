package feedings

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/cjjknight/baby-feeding/internal/ui/styles"
)

// View renders the feedings tab.
func (m *Model) View() string {
	var sections []string

	title := styles.TitleStyle.Render("Feeding Log")
	count := styles.HelpStyle.Render(fmt.Sprintf("%d feedings recorded", len(m.entries)))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", count))

	if len(m.entries) == 0 {
		sections = append(sections, "", styles.HelpStyle.Render("No feedings yet. Press a to add a missed one."))
	} else {
		m.viewport.SetContent(m.renderList())
		m.syncScroll()
		sections = append(sections, m.viewport.View())
	}

	if m.mode != inputNone {
		sections = append(sections, "", m.renderInput())
	} else {
		sections = append(sections, "",
			styles.HelpStyle.Render("a add missed · e edit · d delete · ↑/↓ select"))
	}

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderList() string {
	now := time.Now()
	var rows []string

	var lastDay string
	for i, t := range m.entries {
		day := t.Format("Monday, Jan 2")
		if day != lastDay {
			rows = append(rows, styles.SubTitleStyle.Render(day))
			lastDay = day
		}

		row := fmt.Sprintf("  %s   %s", t.Format("3:04 PM"), relativeAge(now.Sub(t)))
		if i == m.selected {
			row = styles.SelectedRowStyle.Render("▸ " + strings.TrimLeft(row, " "))
		}
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

// syncScroll keeps the selected row inside the viewport.
func (m *Model) syncScroll() {
	if m.viewport.Height <= 0 {
		return
	}
	line := m.selectedLine()
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// selectedLine returns the rendered line index of the selected entry,
// accounting for day header rows.
func (m *Model) selectedLine() int {
	line := 0
	var lastDay string
	for i, t := range m.entries {
		day := t.Format("Monday, Jan 2")
		if day != lastDay {
			line++
			lastDay = day
		}
		if i == m.selected {
			return line
		}
		line++
	}
	return 0
}

func (m *Model) renderInput() string {
	label := "Add missed feeding"
	if m.mode == inputEdit {
		label = fmt.Sprintf("Edit feeding from %s", m.editing.Format("3:04 PM, Jan 2"))
	}

	lines := []string{
		styles.FocusedStyle.Render(label),
		m.input.View(),
	}
	if m.inputErr != "" {
		lines = append(lines, styles.ErrorTextStyle.Render(m.inputErr))
	}
	lines = append(lines, styles.HelpStyle.Render("enter confirm · esc cancel"))

	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func relativeAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 48*time.Hour:
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh ago", h)
		}
		return fmt.Sprintf("%dh %dm ago", h, m)
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
