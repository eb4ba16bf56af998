package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorBorder = lipgloss.Color("#4b5563")
	colorBright = lipgloss.Color("#f9fafb")
	colorDimmed = lipgloss.Color("#6b7280")
	colorError  = lipgloss.Color("#dc2626")
	colorAccent = lipgloss.Color("#3b82f6")
)

const displayWidth = 24

var (
	styleDisplay = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Foreground(colorBright).
			Bold(true).
			Padding(0, 1).
			Width(displayWidth).
			Align(lipgloss.Right)

	styleError = styleDisplay.
			Foreground(colorError)

	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	stylePending = lipgloss.NewStyle().Foreground(colorDimmed)
	styleNotice  = lipgloss.NewStyle().Foreground(colorDimmed).Italic(true)
)
