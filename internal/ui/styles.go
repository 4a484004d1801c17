package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for terminal output
const (
	ColorRed    = "196" // Errors
	ColorYellow = "220" // Warnings
)

// Styles holds the terminal styles used by the CLI.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the styles used for CLI error and warning
// reporting.
func DefaultStyles() Styles {
	return Styles{
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
	}
}
