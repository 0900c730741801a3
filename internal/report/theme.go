package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme styles headings, errors and tip bullets. The zero value prints plain text.
type Theme struct {
	color   bool
	heading lipgloss.Style
	problem lipgloss.Style
	accent  lipgloss.Style
	muted   lipgloss.Style
}

// NewTheme returns a colored theme when color is true and a plain one otherwise.
func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}
	return Theme{
		color:   true,
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A")),
		problem: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
	}
}

// Heading styles a section title.
func (t Theme) Heading(s string) string { return t.render(t.heading, s) }

// Problem styles a validation message.
func (t Theme) Problem(s string) string { return t.render(t.problem, s) }

// Accent styles a highlighted value.
func (t Theme) Accent(s string) string { return t.render(t.accent, s) }

// Muted styles separators.
func (t Theme) Muted(s string) string { return t.render(t.muted, s) }

func (t Theme) render(style lipgloss.Style, s string) string {
	if !t.color || s == "" {
		return s
	}
	return style.Render(s)
}

// ShouldUseColor reports whether w is a terminal that accepts color.
// NO_COLOR always wins; disabled turns color off explicitly.
func ShouldUseColor(w io.Writer, disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
