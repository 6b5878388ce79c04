// Package ui renders RealtyDesk pages and messages for the terminal.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Title style for page headings
	Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")). // Blue
		Bold(true)

	// Subtitle style for secondary headings
	Subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")) // Gray

	// Success style for positive outcomes
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")). // Green
		Bold(true)

	// Error style for failures
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")). // Red
		Bold(true)

	// Dim style for hints and metadata
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	// Label style for the key column of detail views
	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Width(14)
)

// SuccessLine renders msg with a checkmark prefix.
func SuccessLine(msg string) string {
	return Success.Render("✓") + " " + msg
}

// ErrorLine renders err's message with a cross prefix.
func ErrorLine(err error) string {
	return Error.Render("✗") + " " + err.Error()
}
