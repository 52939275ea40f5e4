package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the palette for one colour scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
}

var (
	DarkTheme = Theme{
		Background: lipgloss.Color("#0f172a"),
		Foreground: lipgloss.Color("#e2e8f0"),
		Primary:    lipgloss.Color("#818cf8"),
		Accent:     lipgloss.Color("#f472b6"),
		Muted:      lipgloss.Color("#64748b"),
	}
	LightTheme = Theme{
		Background: lipgloss.Color("#ffffff"),
		Foreground: lipgloss.Color("#0f172a"),
		Primary:    lipgloss.Color("#4f46e5"),
		Accent:     lipgloss.Color("#db2777"),
		Muted:      lipgloss.Color("#94a3b8"),
	}
)

// Styles holds the rendered styles for a Theme.
type Styles struct {
	App        lipgloss.Style
	Header     lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	Item       lipgloss.Style
	ActiveItem lipgloss.Style
	Muted      lipgloss.Style
	Detail     lipgloss.Style
	Title      lipgloss.Style
	Badge      lipgloss.Style
	Footer     lipgloss.Style
}

// NewStyles builds Styles for theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Background(theme.Background).
			Foreground(theme.Foreground).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Primary).
			Padding(0, 1).
			Bold(true),
		Item: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(2),
		ActiveItem: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Detail: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),
		Badge: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Accent).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),
	}
}
