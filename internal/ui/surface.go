package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/skimtui/skim/internal/feed"
	"github.com/skimtui/skim/internal/window"
)

const ruleWidth = 72

// refreshContent rebuilds the scrolling surface from the engine's visible
// slice. Each card is measured as rendered and reported back, so the ledger
// tracks real terminal heights rather than estimates.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	start := time.Now()

	entries := m.engine.Visible()
	m.offsets = m.offsets[:0]

	var b strings.Builder
	line := 0
	for i, e := range entries {
		card := m.renderCard(e)
		h := lipgloss.Height(card)
		m.engine.ReportHeight(e.ID(), h)

		m.offsets = append(m.offsets, line)
		line += h

		b.WriteString(card)
		if i < len(entries)-1 {
			b.WriteByte('\n')
		}
	}
	m.viewport.SetContent(b.String())

	m.engine.ObserveRender(time.Since(start))
}

// afterScroll checks whether the bottom of the viewport has reached the
// window's expansion buffer and grows the window if so. Scrolling back up
// never shrinks it.
func (m *Model) afterScroll() {
	if len(m.offsets) == 0 {
		return
	}
	bottomLine := m.viewport.YOffset + m.viewport.Height - 1
	idx := m.indexAtLine(bottomLine)
	if idx < 0 {
		return
	}
	win := m.engine.Window()
	if m.engine.NearWindowEdge(win.Lower + idx) {
		m.engine.RequestExpansion(window.Down)
	}
}

// indexAtLine maps a content line to the visible-card index covering it.
// Lines past the last card resolve to the last card.
func (m *Model) indexAtLine(line int) int {
	if line < 0 || len(m.offsets) == 0 {
		return -1
	}
	return sort.Search(len(m.offsets), func(i int) bool {
		return m.offsets[i] > line
	}) - 1
}

// renderCard renders one feed entry: a meta line, a title line, the wrapped
// body when present, and a rule. Height varies with body length and wrap.
func (m Model) renderCard(e feed.Entry) string {
	width := max(20, m.width)

	meta := m.styles.CardAuthor.Render(e.Author) +
		m.styles.FaintText.Render(" · ") +
		m.styles.CardTime.Render(relTime(e.PostedAt, time.Now()))

	parts := []string{
		meta,
		m.styles.CardTitle.Bold(true).Render(e.Title),
	}
	if e.Body != "" {
		parts = append(parts, m.styles.CardBody.Width(width).Render(e.Body))
	}
	parts = append(parts, m.styles.CardRule.Render(strings.Repeat("─", min(width, ruleWidth))))

	return strings.Join(parts, "\n")
}

// filterEntries returns the entries matching query, preserving order. An
// empty query returns the input unchanged.
func filterEntries(entries []feed.Entry, query string) []feed.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	out := make([]feed.Entry, 0, len(entries))
	for _, e := range entries {
		if matchesFilter(e, q) {
			out = append(out, e)
		}
	}
	return out
}

// matchesFilter reports whether the entry contains the lowercased query in
// its author, title, or body.
func matchesFilter(e feed.Entry, q string) bool {
	return strings.Contains(strings.ToLower(e.Author), q) ||
		strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Body), q)
}

// relTime formats t relative to now for card metadata.
func relTime(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	since := now.Sub(t)
	switch {
	case since < time.Minute:
		return "now"
	case since < time.Hour:
		return fmt.Sprintf("%dm ago", int(since.Minutes()))
	case since < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(since.Hours()))
	case since < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(since.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
