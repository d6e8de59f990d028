package tui

import "github.com/charmbracelet/lipgloss"

// Shared styles for the page view.
//
//nolint:gochecknoglobals // Lipgloss styles are conventionally package globals.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	ItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	FilteredItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("214")).
				Italic(true)

	ActivePageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	PageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Padding(0, 1)

	DisabledPageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238")).
				Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
