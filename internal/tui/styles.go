package tui

import "github.com/charmbracelet/lipgloss"

// Palette follows the web stylesheet: slate text, blue accent.
var (
	ColorText    = lipgloss.Color("#E2E8F0")
	ColorMuted   = lipgloss.Color("#94A3B8")
	ColorAccent  = lipgloss.Color("#60A5FA")
	ColorActive  = lipgloss.Color("#2563EB")
	ColorBorder  = lipgloss.Color("#334155")
	ColorAwardBg = lipgloss.Color("#1E3A8A")
)

// Styles groups the lipgloss styles used by the view
type Styles struct {
	Sidebar   lipgloss.Style
	Name      lipgloss.Style
	Headline  lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	NavCursor lipgloss.Style
	Link      lipgloss.Style
	Title     lipgloss.Style
	Heading   lipgloss.Style
	Subtle    lipgloss.Style
	Accent    lipgloss.Style
	Award     lipgloss.Style
	Body      lipgloss.Style
	Footer    lipgloss.Style
}

// DefaultStyles returns the standard theme
func DefaultStyles() Styles {
	return Styles{
		Sidebar: lipgloss.NewStyle().
			Width(sidebarWidth).
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(ColorBorder),
		Name:      lipgloss.NewStyle().Bold(true).Foreground(ColorText),
		Headline:  lipgloss.NewStyle().Foreground(ColorMuted),
		NavItem:   lipgloss.NewStyle().Foreground(ColorText),
		NavActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(ColorActive),
		NavCursor: lipgloss.NewStyle().Underline(true),
		Link:      lipgloss.NewStyle().Foreground(ColorMuted),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorText),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(ColorText).MarginBottom(1),
		Subtle:    lipgloss.NewStyle().Foreground(ColorMuted),
		Accent:    lipgloss.NewStyle().Foreground(ColorAccent),
		Award:     lipgloss.NewStyle().Foreground(ColorText).Background(ColorAwardBg).Padding(0, 1),
		Body:      lipgloss.NewStyle().Foreground(ColorText),
		Footer:    lipgloss.NewStyle().Foreground(ColorMuted),
	}
}
