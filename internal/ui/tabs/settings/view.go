package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cjjknight/baby-feeding/internal/models"
	"github.com/cjjknight/baby-feeding/internal/ui/styles"
)

// View renders the settings tab.
func (m *Model) View() string {
	sections := []string{
		styles.TitleStyle.Render("Settings"),
		m.renderInterval(),
		m.renderContacts(),
	}

	if m.step != stepNone {
		sections = append(sections, m.renderForm())
	} else if m.searching {
		sections = append(sections, m.renderSearch())
	}

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderInterval() string {
	cardWidth := max(m.width-6, 40)
	interval := m.state.GetInterval()

	gauge := renderIntervalGauge(interval)

	rows := []string{
		styles.CardTitleStyle.Render("Feeding Interval"),
		"",
		fmt.Sprintf("  Remind every %s",
			lipgloss.NewStyle().Bold(true).Foreground(styles.Primary).
				Render(fmt.Sprintf("%d hours", interval))),
		"  " + gauge,
		"",
		styles.HelpStyle.Render(fmt.Sprintf("  + / - to adjust (%d to %d hours)",
			models.MinIntervalHours, models.MaxIntervalHours)),
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderIntervalGauge draws one cell per configurable hour.
func renderIntervalGauge(interval int) string {
	var b strings.Builder
	filled := lipgloss.NewStyle().Foreground(styles.Primary)
	for h := models.MinIntervalHours; h <= models.MaxIntervalHours; h++ {
		if h <= interval {
			b.WriteString(filled.Render("■"))
		} else {
			b.WriteString(styles.HelpStyle.Render("□"))
		}
		b.WriteString(" ")
	}
	return b.String()
}

func (m *Model) renderContacts() string {
	cardWidth := max(m.width-6, 40)

	title := styles.CardTitleStyle.Render("Notification Contacts")
	if m.query != "" {
		title += styles.HelpStyle.Render(fmt.Sprintf("  (matching %q)", m.query))
	}

	rows := []string{title, ""}

	visible := m.visible()
	if len(visible) == 0 {
		if m.query != "" {
			rows = append(rows, styles.HelpStyle.Render("  No contacts match."))
		} else {
			rows = append(rows, styles.HelpStyle.Render("  No contacts yet. Press a to add one."))
			rows = append(rows, styles.HelpStyle.Render("  Contacts receive a message draft when a feeding is logged."))
		}
	} else {
		for i, c := range visible {
			name := c.FullName()
			if name == "" {
				name = "(unnamed)"
			}
			row := fmt.Sprintf("  %-28s %s", name, styles.HelpStyle.Render(c.PhoneNumber))
			if i == m.selected {
				row = styles.SelectedRowStyle.Render("▸ " + strings.TrimLeft(row, " "))
			}
			rows = append(rows, row)
		}
	}

	rows = append(rows, "",
		styles.HelpStyle.Render("  a add · d remove · / search · ↑/↓ select"))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderForm() string {
	var label string
	switch m.step {
	case stepGivenName:
		label = "New contact: given name"
	case stepFamilyName:
		label = "New contact: family name"
	case stepPhone:
		label = "New contact: phone number"
	}

	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.FocusedStyle.Render(label),
		m.input.View(),
		styles.HelpStyle.Render("enter next · esc cancel"),
	))
}

func (m *Model) renderSearch() string {
	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.FocusedStyle.Render("Search contacts"),
		m.input.View(),
		styles.HelpStyle.Render("enter keep filter · esc clear"),
	))
}
