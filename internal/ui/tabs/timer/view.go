package timer

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/cjjknight/baby-feeding/internal/ui/components"
	"github.com/cjjknight/baby-feeding/internal/ui/styles"
)

// View renders the timer tab.
func (m *Model) View() string {
	d := m.display()

	var sections []string

	sections = append(sections, styles.TitleStyle.Render("Time Since Last Feeding"))

	// The elapsed clock sits on the urgency color so the display itself
	// reads as the alert.
	clock := styles.UrgencyStyle(d.Urgency.Hex()).Render(bigClock(d.Elapsed))
	sections = append(sections, clock)

	if d.HasFeeds {
		log := m.state.GetLog()
		if last, ok := log.MostRecent(); ok {
			sections = append(sections, "",
				styles.HelpStyle.Render(fmt.Sprintf("Last fed at %s", last.Format("3:04 PM, Jan 2"))))
		}
		sections = append(sections, "",
			components.RenderTimeline(log, time.Now(), max(m.width-8, 24)))
	} else {
		sections = append(sections, "",
			styles.HelpStyle.Render("No feedings recorded yet. Press f to log the first one."))
	}

	interval := m.state.GetInterval()
	sections = append(sections, "",
		styles.SubTitleStyle.Render(fmt.Sprintf("Feeding interval: every %d hours", interval)))

	if m.recording {
		sections = append(sections, styles.HelpStyle.Render("Recording..."))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	return styles.CenterBoth(content, m.width, m.height)
}

// bigClock renders HH:MM:SS using block digits, five rows tall.
func bigClock(s string) string {
	rows := make([]string, 5)
	for _, r := range s {
		glyph, ok := digitGlyphs[r]
		if !ok {
			glyph = digitGlyphs[' ']
		}
		for i := range rows {
			rows[i] += glyph[i] + " "
		}
	}

	var out string
	for i, row := range rows {
		if i > 0 {
			out += "\n"
		}
		out += row
	}
	return out
}

var digitGlyphs = map[rune][5]string{
	'0': {"█████", "█   █", "█   █", "█   █", "█████"},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {"█████", "    █", "█████", "█    ", "█████"},
	'3': {"█████", "    █", " ████", "    █", "█████"},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "█████", "    █", "█████"},
	'6': {"█████", "█    ", "█████", "█   █", "█████"},
	'7': {"█████", "    █", "   █ ", "  █  ", "  █  "},
	'8': {"█████", "█   █", "█████", "█   █", "█████"},
	'9': {"█████", "█   █", "█████", "    █", "█████"},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
	' ': {"     ", "     ", "     ", "     ", "     "},
}
