// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across the static table and the browser.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/tbl/internal/table"
)

// Primary colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success is used for positive outcomes (green)
	Success color.Color = lipgloss.Color("82")

	// Error is used for error messages and error rows (red)
	Error color.Color = lipgloss.Color("196")

	// Muted is used for disabled/inactive text and blind rows (gray)
	Muted color.Color = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal color.Color = lipgloss.Color("252")

	// Info is used for informational text and info rows
	Info color.Color = lipgloss.Color("244")

	// Warning is used for warning rows (orange)
	Warning color.Color = lipgloss.Color("214")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// InfoStyle applies the info color with italic
	InfoStyle = lipgloss.NewStyle().
			Foreground(Info).
			Italic(true)

	// HeaderStyle renders column headers
	HeaderStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// SelectedStyle marks the focused column header or row in the browser
	SelectedStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)
)

// Border styles
var (
	// RoundedBorder frames the filter editor
	RoundedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)

// Text highlighting styles
var (
	// HighlightStyle for highlighting matched characters (pink, bold, underline)
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)
)

// Level returns the row style of a highlight level.
func Level(h table.Highlight) lipgloss.Style {
	switch h {
	case table.HighlightInfo:
		return lipgloss.NewStyle().Foreground(Info)
	case table.HighlightWarning:
		return WarningStyle
	case table.HighlightError:
		return ErrorStyle
	case table.HighlightBlind:
		return MutedStyle.Faint(true)
	default:
		return NormalStyle
	}
}
