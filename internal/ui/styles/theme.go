package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette -- single source of truth
var (
	ColorPrimary     = lipgloss.Color("69")
	ColorSuccess     = lipgloss.Color("42")
	ColorWarning     = lipgloss.Color("214")
	ColorError       = lipgloss.Color("196")
	ColorMuted       = lipgloss.Color("241")
	ColorText        = lipgloss.Color("255")
	ColorHighlightBg = lipgloss.Color("237")
	ColorNormal      = lipgloss.Color("252")
)

// Title is the header line rendered above the log pane.
var Title = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

// Status styles, shared between the status bar and highlight.StyleSeverity*.
var (
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)

	Warn = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)

	Error = lipgloss.NewStyle().Foreground(ColorError)

	Info = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Normal is the default, unhighlighted line style.
var Normal = lipgloss.NewStyle().
	Foreground(ColorNormal).
	Padding(0, 1)

// Help renders the footer keybinding hints.
var Help = lipgloss.NewStyle().Foreground(ColorMuted)

// DisableColors forces all Lipgloss rendering to produce plain text.
// Call once at startup from cmd/root.go based on --no-color flag.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
