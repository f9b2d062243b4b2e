package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/jam/internal/config"
)

// Styles is the lipgloss palette for the widget.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Cursor   lipgloss.Style
	Open     lipgloss.Style
	Total    lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
	Selected lipgloss.Style
}

// NewStyles builds the palette from configured colors.
func NewStyles(colors config.ColorsConfig) Styles {
	accent := lipgloss.Color(colors.Accent)
	dim := lipgloss.Color(colors.Dim)
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Header:   lipgloss.NewStyle().Foreground(dim).Underline(true),
		Cursor:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Open:     lipgloss.NewStyle().Foreground(dim).Italic(true),
		Total:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Total)).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Error)),
		Status:   lipgloss.NewStyle().Foreground(dim),
		Selected: lipgloss.NewStyle().Bold(true),
	}
}
