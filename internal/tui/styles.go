package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/dockyard/internal/panels"
)

// styles holds every lipgloss style the shell renders with, derived
// from the active theme so a toggle rebuilds them wholesale.
type styles struct {
	header      lipgloss.Style
	footer      lipgloss.Style
	status      lipgloss.Style
	statusErr   lipgloss.Style
	pane        lipgloss.Style
	paneFocused lipgloss.Style
	tab         lipgloss.Style
	tabActive   lipgloss.Style
	dockTitle   lipgloss.Style
	modal       lipgloss.Style
	modalTitle  lipgloss.Style
	option      lipgloss.Style
	optionHot   lipgloss.Style
	pickerItem  lipgloss.Style
	pickerHot   lipgloss.Style
	pickerQuery lipgloss.Style
}

func newStyles(th panels.Theme) styles {
	return styles{
		header:      lipgloss.NewStyle().Foreground(th.Accent).Bold(true).Padding(0, 1),
		footer:      lipgloss.NewStyle().Foreground(th.Subtle).Padding(0, 1),
		status:      lipgloss.NewStyle().Foreground(th.Text).Padding(0, 1),
		statusErr:   lipgloss.NewStyle().Foreground(th.Error).Bold(true).Padding(0, 1),
		pane:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(th.Border),
		paneFocused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(th.Focus),
		tab:         lipgloss.NewStyle().Foreground(th.Subtle).Padding(0, 1),
		tabActive:   lipgloss.NewStyle().Foreground(th.Accent).Bold(true).Padding(0, 1),
		dockTitle:   lipgloss.NewStyle().Foreground(th.Subtle).Bold(true),
		modal:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(th.Warning).Padding(1, 2),
		modalTitle:  lipgloss.NewStyle().Foreground(th.Warning).Bold(true),
		option:      lipgloss.NewStyle().Foreground(th.Subtle).Padding(0, 2),
		optionHot:   lipgloss.NewStyle().Foreground(th.Accent).Bold(true).Padding(0, 2).Underline(true),
		pickerItem:  lipgloss.NewStyle().Foreground(th.Text).Padding(0, 1),
		pickerHot:   lipgloss.NewStyle().Foreground(th.Focus).Bold(true).Padding(0, 1),
		pickerQuery: lipgloss.NewStyle().Foreground(th.Accent),
	}
}
