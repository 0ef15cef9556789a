package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/fahrplan/internal/tui/theme"
)

type styles struct {
	title  lipgloss.Style
	status lipgloss.Style
}

func newStyles(th theme.Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(th.Accent)).
			Padding(0, 1),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(th.Muted)).
			Padding(0, 1),
	}
}
