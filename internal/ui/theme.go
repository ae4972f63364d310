package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text   string
	Muted  string
	Faint  string
	Accent string

	Active    string // active tab text
	Indicator string // selection indicator bar
	Arrow     string // scroll arrow glyphs
	ArrowDim  string // disabled arrow glyphs
	FocusRing string // keyboard-focused tab
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
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

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Active)).
			Bold(true).
			Padding(0, 1),

		FocusedTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FocusRing)).
			Underline(true).
			Padding(0, 1),

		Indicator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Indicator)),

		Arrow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Arrow)).
			Bold(true),

		ArrowDim: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ArrowDim)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style

	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	FocusedTab lipgloss.Style
	Indicator  lipgloss.Style
	Arrow      lipgloss.Style
	ArrowDim   lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the theme after the given one in cycle order.
func NextTheme(name string) Theme {
	for i, n := range themeOrder {
		if n == name {
			return themes[themeOrder[(i+1)%len(themeOrder)]]
		}
	}
	return nightfoxTheme()
}

func nightfoxTheme() Theme {
	return Theme{
		Name:       "Nightfox",
		Background: "#192330",
		Surface:    "#212e3f",
		Text:       "#cdcecf",
		Muted:      "#738091",
		Faint:      "#39506d",
		Accent:     "#86abdc",
		Active:     "#dbc074",
		Indicator:  "#dbc074",
		Arrow:      "#86abdc",
		ArrowDim:   "#39506d",
		FocusRing:  "#9d79d6",
	}
}

func kanagawaTheme() Theme {
	return Theme{
		Name:       "Kanagawa",
		Background: "#1f1f28",
		Surface:    "#2a2a37",
		Text:       "#dcd7ba",
		Muted:      "#727169",
		Faint:      "#49473e",
		Accent:     "#7e9cd8",
		Active:     "#e6c384",
		Indicator:  "#e6c384",
		Arrow:      "#7e9cd8",
		ArrowDim:   "#49473e",
		FocusRing:  "#957fb8",
	}
}

func slateTheme() Theme {
	return Theme{
		Name:       "Slate",
		Background: "#1e293b",
		Surface:    "#334155",
		Text:       "#e2e8f0",
		Muted:      "#94a3b8",
		Faint:      "#475569",
		Accent:     "#38bdf8",
		Active:     "#fbbf24",
		Indicator:  "#fbbf24",
		Arrow:      "#38bdf8",
		ArrowDim:   "#475569",
		FocusRing:  "#c084fc",
	}
}
