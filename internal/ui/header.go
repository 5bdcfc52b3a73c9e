package ui

import (
	"fmt"
	"strings"
	"time"
)

// renderHeader renders the status bar: feed health, entry counts, and the
// last refresh time.
func (m Model) renderHeader() string {
	compact := m.width < 90

	var parts []string
	parts = append(parts, m.styles.Logo.Render("skim"))

	switch {
	case m.snapshot.IsStalled():
		parts = append(parts, m.styles.DangerText.Render("● STALLED"))
	case m.fetching:
		parts = append(parts, m.styles.WarningText.Render("● FETCHING"))
	case m.snapshot.Exhausted:
		parts = append(parts, m.styles.MutedText.Render("● COMPLETE"))
	default:
		parts = append(parts, m.styles.SuccessText.Render("● LIVE"))
	}

	total := len(m.snapshot.Entries)
	shown := m.engine.Count()
	if m.filterQuery == "" {
		parts = append(parts,
			m.styles.MutedText.Render("Entries:")+" "+
				m.styles.Text.Render(fmt.Sprintf("%d", total)))
	} else {
		parts = append(parts,
			m.styles.MutedText.Render("Entries:")+" "+
				m.styles.Text.Render(fmt.Sprintf("%d/%d", shown, total))+" "+
				m.styles.AccentText.Render("/"+truncate(m.filterQuery, 18)))
	}

	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, m.styles.MutedText.Render(m.snapshot.LastUpdated.Format("15:04:05")))
	}

	if m.snapshot.LastError != nil {
		maxErr := 60
		if compact {
			maxErr = 30
		}
		parts = append(parts,
			m.styles.DangerText.Render("ERROR")+" "+
				m.styles.DangerText.Render(truncate(m.snapshot.LastError.Error(), maxErr)))
	}

	return m.styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderCommandBar renders key hints, or the filter prompt while the user is
// typing a query.
func (m Model) renderCommandBar() string {
	if m.filtering {
		return m.styles.Header.Width(m.width).Render(m.filterInput.View())
	}

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"j/k", "Scroll"},
		{"g/G", "Top/Bottom"},
		{"/", "Filter"},
		{"D", "Debug"},
		{"?", "Help"},
		{"q", "Quit"},
	}

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			m.styles.AccentText.Render(c.key)+m.styles.FaintText.Render(":")+m.styles.MutedText.Render(c.desc))
	}
	segments = append(segments,
		m.styles.AccentText.Render("T")+m.styles.FaintText.Render(":")+m.styles.FaintText.Render(m.theme.Name))

	return m.styles.Header.Width(m.width).Render(strings.Join(segments, "  "))
}

// renderFooter renders the scroll position line, with engine internals
// appended when the debug footer is enabled.
func (m Model) renderFooter() string {
	win := m.engine.Window()

	var parts []string
	parts = append(parts, m.styles.MutedText.Render(
		fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)))
	parts = append(parts, m.styles.MutedText.Render(
		fmt.Sprintf("window %d-%d of %d", win.Lower, win.Upper, m.engine.Count())))

	if m.showDebug {
		stats := m.engine.RenderStats()
		parts = append(parts, m.styles.FaintText.Render(
			fmt.Sprintf("extent %d", m.engine.Extent())))
		parts = append(parts, m.styles.FaintText.Render(
			fmt.Sprintf("mut %s", m.lastMutation)))
		parts = append(parts, m.styles.FaintText.Render(
			fmt.Sprintf("renders %d avg %s", stats.Renders(), stats.Average().Round(10*time.Microsecond))))
	}

	return m.styles.Footer.Width(m.width).Render(strings.Join(parts, "  ·  "))
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
