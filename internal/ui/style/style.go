// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling is
// semantic (Severity, Location, Header, etc.) rather than visual. When
// disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	headerStyle   lipgloss.Style
	locationStyle lipgloss.Style
	mutedStyle    lipgloss.Style
	severityStyle map[string]lipgloss.Style
)

// Init initializes the style package. It respects the NO_COLOR and
// GLINT_NO_COLOR environment variables; if either is set, styling is
// disabled regardless of the enable parameter.
//
// This function should be called once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("GLINT_NO_COLOR") != "" {
		enabled = false
		return
	}
	enabled = enable
	if !enabled {
		return
	}

	// Force the ANSI256 palette regardless of lipgloss's own TTY probing;
	// main has already decided whether stdout is a terminal.
	lipgloss.SetColorProfile(termenv.ANSI256)

	headerStyle = lipgloss.NewStyle().Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	severityStyle = map[string]lipgloss.Style{
		"consistency": lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		"design":      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		"readability": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"refactor":    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"warning":     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Header styles section headers.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Location styles file:line:column references.
func Location(text string) string {
	if !enabled {
		return text
	}
	return locationStyle.Render(text)
}

// Muted styles de-emphasized text.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}

// Severity styles text with the color owned by a check category.
func Severity(category, text string) string {
	if !enabled {
		return text
	}
	if s, ok := severityStyle[category]; ok {
		return s.Render(text)
	}
	return text
}
