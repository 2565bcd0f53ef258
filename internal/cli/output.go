package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/amc-tools/amc-answers/internal/exam"
)

var (
	headerColor  = color.New(color.FgMagenta, color.Bold)
	promptColor  = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgBlue)
	optionColor  = color.New(color.FgGreen)
	sectionColor = color.New(color.FgCyan)
	brightColor  = color.New(color.FgWhite, color.Bold)
)

func printHeader(w io.Writer, text string) {
	headerColor.Fprintln(w, text) //nolint:errcheck
}

func printError(w io.Writer, text string) {
	errorColor.Fprintf(w, "✗ %s\n", text) //nolint:errcheck
}

func printSuccess(w io.Writer, text string) {
	successColor.Fprintf(w, "✓ %s\n", text) //nolint:errcheck
}

func printInfo(w io.Writer, text string) {
	infoColor.Fprintf(w, "ℹ %s\n", text) //nolint:errcheck
}

func printRule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 40))
}

// printTestTypes lists the test types offered in a year, with descriptions.
func printTestTypes(w io.Writer, year int, types []exam.Type) {
	printHeader(w, fmt.Sprintf("Available test types for %d:", year))
	for _, t := range types {
		optionColor.Fprintf(w, "  • %s (%s)\n", t.Code, t.Description) //nolint:errcheck
	}
	fmt.Fprintln(w)
}

// printAnswers writes the numbered answer list, alternating emphasis so
// adjacent rows are easy to tell apart.
func printAnswers(w io.Writer, label string, answers []string) {
	printHeader(w, fmt.Sprintf("Answers for %s:", label))
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for i, answer := range answers {
		line := fmt.Sprintf("%2d. %s", i+1, answer)
		if i%2 == 0 {
			brightColor.Fprintln(w, line) //nolint:errcheck
		} else {
			fmt.Fprintln(w, line)
		}
	}
}

// printSections lists solution sections 1-indexed for selection.
func printSections(w io.Writer, sections []string) {
	for i, section := range sections {
		sectionColor.Fprintf(w, "%d. %s\n", i+1, section) //nolint:errcheck
	}
}

// formatSolution renders extracted fragments the way the wiki reads:
// space-joined, with the separator fragments providing paragraph breaks.
func formatSolution(fragments []string) string {
	return strings.Join(fragments, " ")
}
