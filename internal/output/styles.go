package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Single source of truth; never use inline lipgloss.Color
// literals elsewhere in the CLI.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, script keys.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" and "completed" statuses.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and skipped steps.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for failed steps.
	ColorRed = lipgloss.Color("196")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleOK styles success markers.
	StyleOK = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleWarn styles warning markers.
	StyleWarn = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleFail styles failure markers.
	StyleFail = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleDim styles structural chrome (separators, annotations).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Step status markers printed in run reports.
const (
	MarkOK   = "✔"
	MarkWarn = "!"
	MarkFail = "✘"
	MarkSkip = "-"
)

// StepLine formats a single run-report line: a styled marker, the step name,
// and an optional dim annotation.
func StepLine(marker, style, name, note string) string {
	var s lipgloss.Style
	switch style {
	case "ok":
		s = StyleOK
	case "warn":
		s = StyleWarn
	case "fail":
		s = StyleFail
	default:
		s = StyleDim
	}
	line := fmt.Sprintf("  %s %s", s.Render(marker), name)
	if note != "" {
		line += " " + StyleDim.Render(note)
	}
	return line
}
