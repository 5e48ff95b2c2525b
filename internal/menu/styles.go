package menu

import "github.com/charmbracelet/lipgloss"

// styles groups the lipgloss styles used by the menu.
type styles struct {
	title   lipgloss.Style
	cursor  lipgloss.Style
	applied lipgloss.Style
	help    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		applied: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
