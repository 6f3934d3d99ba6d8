package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// colorEnabled gates all styling on stdout being a terminal.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("1")), text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("2")), text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("3")), text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("6")), text)
}

// ColorDim renders text in a faint style
func ColorDim(text string) string {
	return render(lipgloss.NewStyle().Faint(true), text)
}

// ColorBranchName styles a branch name for progress output
func ColorBranchName(branchName string) string {
	return ColorCyan(branchName)
}
