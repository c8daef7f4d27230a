package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorGreen = lipgloss.Color("35")  // Green - success
	colorGray  = lipgloss.Color("245") // Gray - keys
	colorWhite = lipgloss.Color("255") // Bright white - values
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(16)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const iconSuccess = "✓"

// field is one key/value row of a summary block.
type field struct {
	key, value string
}

// printSummary writes a titled key/value block.
func printSummary(w io.Writer, title string, fields []field) {
	var sb strings.Builder
	sb.WriteString(styleTitle.Render(title))
	sb.WriteByte('\n')
	for _, f := range fields {
		sb.WriteString(styleKey.Render(f.key))
		sb.WriteString(styleValue.Render(f.value))
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}

// printWritten reports an artifact written to disk.
func printWritten(w io.Writer, what, path string) {
	fmt.Fprintf(w, "%s %s %s\n", styleSuccess.Render(iconSuccess), what, path)
}
