package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/pathpair/pkg/types"
)

var (
	arrowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	outStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	containerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	summaryStyle   = lipgloss.NewStyle().Faint(true)
)

// colorEnabled suppresses styling when stdout is not a terminal, so
// piped output stays plain.
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

func render(style lipgloss.Style, s string) string {
	if !colorEnabled() {
		return s
	}
	return style.Render(s)
}

func renderPair(pair types.Pair) string {
	return fmt.Sprintf("%s %s %s",
		pair.In.String(),
		render(arrowStyle, "->"),
		render(outStyle, pair.Out.String()))
}

func renderContainer(dir string) string {
	return render(containerStyle, fmt.Sprintf("container: %s", dir))
}

func renderSummary(count int) string {
	noun := "pairs"
	if count == 1 {
		noun = "pair"
	}
	return render(summaryStyle, fmt.Sprintf("%d %s", count, noun))
}

func renderError(err error) string {
	return render(errorStyle, fmt.Sprintf("Error: %v", err))
}
