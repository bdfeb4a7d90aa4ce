package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette. Named constants for all ANSI 256 colors used in the CLI.
var (
	// ColorCyan is used for identifiable nouns: project names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow marks library projects.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (scope prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// Project kind labels as printed in tables.
const (
	KindLibrary     = "library"
	KindApplication = "application"
)

// KindStyle returns the style for a project kind label.
func KindStyle(kind string) lipgloss.Style {
	switch kind {
	case KindLibrary:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case KindApplication:
		return lipgloss.NewStyle().Foreground(ColorCyan)
	default:
		return lipgloss.NewStyle().Faint(true)
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ConfigureColor disables colour unless w is a terminal.
func ConfigureColor(w io.Writer) {
	if f, ok := w.(*os.File); ok && IsTerminal(f) {
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}
