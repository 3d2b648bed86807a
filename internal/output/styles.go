package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, template names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for rendered files.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and skipped steps.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failures (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs and headings.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome and descriptions.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleError styles failure messages written to stderr.
	StyleError = lipgloss.NewStyle().Foreground(ColorBoldRed)
)

// File status values reported for scaffolded files.
const (
	StatusRendered = "rendered"
	StatusCopied   = "copied"
	StatusSkipped  = "skipped"
	StatusFailed   = "failed"
)

// StatusStyle returns the style for a file status. Unknown statuses are unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusRendered:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusCopied:
		return lipgloss.NewStyle().Faint(true)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatNextSteps renders a numbered list of shell commands under a heading.
func FormatNextSteps(steps []string) string {
	var b strings.Builder
	b.WriteString(StyleAction.Render("Next steps:"))
	b.WriteString("\n")
	for _, s := range steps {
		b.WriteString("  ")
		b.WriteString(StyleNoun.Render(s))
		b.WriteString("\n")
	}
	return b.String()
}
