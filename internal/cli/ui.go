package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/hexforge/hexforge/pkg/builder"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorGray  = lipgloss.Color("245") // Gray - secondary text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorGray)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

// printSuccess writes a green checkmarked message to stderr.
func printSuccess(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styleSuccess.Render("✓"), fmt.Sprintf(format, args...))
}

// printInfo writes a dimmed informational message to stderr.
func printInfo(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styleDim.Render(fmt.Sprintf(format, args...)))
}

// printError writes a red-crossed message to stderr.
func printError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styleError.Render("✗"), fmt.Sprintf(format, args...))
}

// summarize renders a short styled report of an assembled grid.
func summarize(name string, ctl *builder.Control) string {
	d := ctl.Data
	return fmt.Sprintf("%s %s %s, %s hexagons (radius %g, %dx%d)",
		styleTitle.Render(name),
		styleDim.Render(d.Shape.String()),
		styleDim.Render(d.Orientation.String()),
		styleNumber.Render(fmt.Sprintf("%d", ctl.Grid.Len())),
		d.Radius, d.Width, d.Height)
}
