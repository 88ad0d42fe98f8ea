package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors use the 16 ANSI indexes so CLI messages follow the user's terminal
// theme, the same palette the panel labels are drawn from.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// SuccessStyle renders passing checks and confirmations.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle renders failures.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// WarningStyle renders warnings and omitted probes.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// MutedStyle renders secondary text such as suggestions.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// HeaderStyle renders section headers.
func HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

// DisableColors switches lipgloss to plain output (for --no-color).
// It does not affect the panel, which writes its own escapes.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
