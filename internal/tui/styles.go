package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibloop/internal/ui"
)

// styles bundles the lipgloss styles used by the dashboard views.
type styles struct {
	Header  lipgloss.Style
	Panel   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Spark   lipgloss.Style
	Stream  lipgloss.Style
	ErrText lipgloss.Style
	Help    lipgloss.Style
}

// newStyles derives the style set from the active UI theme.
func newStyles() styles {
	theme := ui.GetCurrentTUITheme()
	return styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Label:   lipgloss.NewStyle().Foreground(theme.Dim),
		Value:   lipgloss.NewStyle().Foreground(theme.Text),
		Spark:   lipgloss.NewStyle().Foreground(theme.Success),
		Stream:  lipgloss.NewStyle().Foreground(theme.Accent),
		ErrText: lipgloss.NewStyle().Foreground(theme.Error),
		Help:    lipgloss.NewStyle().Foreground(theme.Dim),
	}
}
