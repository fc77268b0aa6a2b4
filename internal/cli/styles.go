package cli

import "github.com/charmbracelet/lipgloss"

// Consistent color scheme for command output across all commands
var (
	// Diff lines
	StyleDiffAdded   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green - incoming
	StyleDiffRemoved = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red - outgoing

	// UI elements
	StyleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	StyleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
	StyleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // Gray
)
