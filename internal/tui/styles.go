package tui

import "github.com/charmbracelet/lipgloss"

const (
	emerald400 = "#34D399"
	emerald600 = "#059669"
	cyan400    = "#22D3EE"
	gray400    = "#9CA3AF"
	gray500    = "#6B7280"
	gray900    = "#111827"
	white      = "#FFFFFF"
)

type styles struct {
	box        lipgloss.Style
	title      lipgloss.Style
	muted      lipgloss.Style
	value      lipgloss.Style
	percentage lipgloss.Style
	status     lipgloss.Style
}

func newStyles(dark bool) styles {
	primary, accent, text, muted := emerald600, emerald600, gray900, gray500
	if dark {
		primary, accent, text, muted = emerald400, cyan400, white, gray400
	}

	return styles{
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primary)).
			Padding(1, 2),
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(primary)),
		muted:      lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		value:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(text)),
		percentage: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		status:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(primary)),
	}
}
