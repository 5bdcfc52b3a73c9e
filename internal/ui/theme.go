package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars
	SurfaceAlt string // Card separators, inactive chrome

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		CardAuthor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		CardTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		CardTime: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		CardBody: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		CardRule: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SurfaceAlt)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	// Entry cards
	CardAuthor lipgloss.Style
	CardTitle  lipgloss.Style
	CardTime   lipgloss.Style
	CardBody   lipgloss.Style
	CardRule   lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Tokyonight": tokyonightTheme(),
	"Gruvbox":    gruvboxTheme(),
	"Rosepine":   rosepineTheme(),
}

var themeOrder = []string{"Tokyonight", "Gruvbox", "Rosepine"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return tokyonightTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func tokyonightTheme() Theme {
	// Tokyonight palette: https://github.com/folke/tokyonight.nvim
	return Theme{
		Name: "Tokyonight",

		Background: "#1a1b26", // bg
		Surface:    "#24283b", // bg_highlight
		SurfaceAlt: "#414868", // terminal black

		Border:      "#3b4261", // fg_gutter
		BorderFocus: "#7aa2f7", // blue

		Text:    "#c0caf5", // fg
		Muted:   "#9aa5ce", // fg_dark
		Faint:   "#565f89", // comment
		Accent:  "#7aa2f7", // blue
		Success: "#9ece6a", // green
		Warning: "#e0af68", // yellow
		Danger:  "#f7768e", // red
	}
}

func gruvboxTheme() Theme {
	// Gruvbox dark palette: https://github.com/morhetz/gruvbox
	return Theme{
		Name: "Gruvbox",

		Background: "#282828", // bg0
		Surface:    "#3c3836", // bg1
		SurfaceAlt: "#504945", // bg2

		Border:      "#665c54", // bg3
		BorderFocus: "#83a598", // blue

		Text:    "#ebdbb2", // fg1
		Muted:   "#bdae93", // fg3
		Faint:   "#928374", // gray
		Accent:  "#83a598", // blue
		Success: "#b8bb26", // green
		Warning: "#fabd2f", // yellow
		Danger:  "#fb4934", // red
	}
}

func rosepineTheme() Theme {
	// Rosé Pine palette: https://rosepinetheme.com/palette
	return Theme{
		Name: "Rosepine",

		Background: "#191724", // base
		Surface:    "#1f1d2e", // surface
		SurfaceAlt: "#26233a", // overlay

		Border:      "#403d52", // highlight med
		BorderFocus: "#c4a7e7", // iris

		Text:    "#e0def4", // text
		Muted:   "#908caa", // subtle
		Faint:   "#6e6a86", // muted
		Accent:  "#c4a7e7", // iris
		Success: "#31748f", // pine
		Warning: "#f6c177", // gold
		Danger:  "#eb6f92", // love
	}
}
