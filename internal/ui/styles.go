// Package ui holds the lipgloss styles for terminal rendering.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the interactive surface.
var (
	ColorRed    = lipgloss.Color("#FF5555")
	ColorGreen  = lipgloss.Color("#50FA7B")
	ColorYellow = lipgloss.Color("#F1FA8C")
	ColorCyan   = lipgloss.Color("#8BE9FD")
	ColorGray   = lipgloss.Color("#666666")
)

// Base styles reused by the session loop.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	MenuStyle = lipgloss.NewStyle()

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	RecordingStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)
)
