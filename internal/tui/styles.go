package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Base styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6")).
			MarginBottom(1)

	rowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(lipgloss.Color("240")).
				Bold(true)

	// Provider source colors
	currentColor = lipgloss.Color("2") // Green - provider the config points at now

	sourceStyle = lipgloss.NewStyle().
			Faint(true)

	emptyStyle = lipgloss.NewStyle().
			Faint(true).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)
