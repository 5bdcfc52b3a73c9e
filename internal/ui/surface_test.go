package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/skimtui/skim/internal/feed"
)

func TestRelTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"zero", time.Time{}, ""},
		{"now", now.Add(-30 * time.Second), "now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-49 * time.Hour), "2d ago"},
		{"old", now.Add(-90 * 24 * time.Hour), "2025-12-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := relTime(tc.at, now); got != tc.want {
				t.Fatalf("relTime = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFilterEntries(t *testing.T) {
	entries := []feed.Entry{
		{UID: "a", Author: "Morgan", Title: "release notes", Body: "shipping friday"},
		{UID: "b", Author: "Quinn", Title: "standup", Body: "blocked on review"},
		{UID: "c", Author: "morgan", Title: "retro", Body: ""},
	}

	if got := filterEntries(entries, ""); len(got) != 3 {
		t.Fatalf("empty query filtered to %d entries, want 3", len(got))
	}
	if got := filterEntries(entries, "  MORGAN "); len(got) != 2 {
		t.Fatalf("author query matched %d entries, want 2", len(got))
	}
	got := filterEntries(entries, "review")
	if len(got) != 1 || got[0].UID != "b" {
		t.Fatalf("body query = %+v, want just entry b", got)
	}
	if got := filterEntries(entries, "nomatch"); len(got) != 0 {
		t.Fatalf("miss query matched %d entries, want 0", len(got))
	}
}

func TestIndexAtLine(t *testing.T) {
	m := Model{offsets: []int{0, 3, 7}}

	cases := []struct {
		line, want int
	}{
		{-1, -1},
		{0, 0},
		{2, 0},
		{3, 1},
		{6, 1},
		{7, 2},
		{500, 2}, // past the last card resolves to the last card
	}
	for _, tc := range cases {
		if got := m.indexAtLine(tc.line); got != tc.want {
			t.Fatalf("indexAtLine(%d) = %d, want %d", tc.line, got, tc.want)
		}
	}

	empty := Model{}
	if got := empty.indexAtLine(0); got != -1 {
		t.Fatalf("indexAtLine on empty surface = %d, want -1", got)
	}
}

func TestRenderCardHeightTracksBody(t *testing.T) {
	theme := GetTheme("Tokyonight")
	m := Model{theme: theme, styles: theme.Styles(), width: 100}

	bare := feed.Entry{UID: "a", Author: "sam", Title: "short", PostedAt: time.Now()}
	withBody := bare
	withBody.Body = "line one\nline two\nline three"

	hBare := lipgloss.Height(m.renderCard(bare))
	hBody := lipgloss.Height(m.renderCard(withBody))

	// meta + title + rule
	if hBare != 3 {
		t.Fatalf("bodyless card height = %d, want 3", hBare)
	}
	if hBody != hBare+3 {
		t.Fatalf("three-line body card height = %d, want %d", hBody, hBare+3)
	}
}

func TestRenderCardContainsFields(t *testing.T) {
	theme := GetTheme("Gruvbox")
	m := Model{theme: theme, styles: theme.Styles(), width: 100}

	card := m.renderCard(feed.Entry{
		UID:      "a",
		Author:   "casey",
		Title:    "deploy window",
		Body:     "rolling at noon",
		PostedAt: time.Now(),
	})
	for _, want := range []string{"casey", "deploy window", "rolling at noon"} {
		if !strings.Contains(card, want) {
			t.Fatalf("card missing %q:\n%s", want, card)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 8); got != "hello..." {
		t.Fatalf("truncate = %q, want %q", got, "hello...")
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q, want unchanged", got)
	}
	if got := truncate("abc", 2); got != "ab" {
		t.Fatalf("truncate tiny = %q, want %q", got, "ab")
	}
	if got := truncate("abc", 0); got != "" {
		t.Fatalf("truncate zero = %q, want empty", got)
	}
}
