package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by the spinner, progress table and static print
// helpers below.
var (
	colorCyan  = lipgloss.Color("6")
	colorGreen = lipgloss.Color("2")
	colorGray  = lipgloss.Color("8")
	colorWhite = lipgloss.Color("15")
	colorDim   = lipgloss.Color("240")
)

// Styles used across command output.
var (
	StyleTitle       = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim         = lipgloss.NewStyle().Foreground(colorDim)
	StyleSuccess     = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	StyleWarning     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	StyleError       = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

func printSuccess(format string, args ...any) {
	fmt.Fprintln(os.Stderr, StyleSuccess.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Fprintln(os.Stderr, StyleDim.Render("i")+" "+fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, StyleError.Render("✗")+" "+fmt.Sprintf(format, args...))
}

func printDetail(format string, args ...any) {
	fmt.Fprintln(os.Stderr, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}
