package render

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/priosched/internal/config"
	"github.com/thenoetrevino/priosched/internal/models"
)

// Styles holds the lipgloss styles used for console output
type Styles struct {
	Header lipgloss.Style
	High   lipgloss.Style
	Medium lipgloss.Style
	Low    lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles builds styles from a color scheme
func NewStyles(colors config.ColorScheme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Header)),
		High: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.High)),
		Medium: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Medium)),
		Low: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Low)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Error)),
	}
}

// Priority returns the style for a tier
func (s Styles) Priority(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return s.High
	case models.PriorityMedium:
		return s.Medium
	default:
		return s.Low
	}
}
