package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
)

var (
	createdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	existsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	doneStyle    = lipgloss.NewStyle().Bold(true)
)

// outcomeLabel is the plain-text tag for an outcome line.
func outcomeLabel(o Outcome) string {
	if o.Created {
		return "created"
	}
	return "exists"
}

// renderOutcome formats one console line for an outcome, styled unless color
// is disabled.
func renderOutcome(o Outcome, color bool) string {
	label := fmt.Sprintf("%-7s", outcomeLabel(o))
	if !color {
		return label + " " + o.Path
	}
	style := existsStyle
	if o.Created {
		style = createdStyle
	}
	return style.Render(label) + " " + o.Path
}

// renderDone formats the completion line printed after a run.
func renderDone(msg string, color bool) string {
	if !color {
		return msg
	}
	return doneStyle.Render(msg)
}

// runSummary aggregates a finished (or aborted) run for reporting.
type runSummary struct {
	Template string
	Root     string
	Created  int
	Existing int
}

func summarize(name, root string, outcomes []Outcome) runSummary {
	sum := runSummary{Template: name, Root: root}
	for _, o := range outcomes {
		if o.Created {
			sum.Created++
		} else {
			sum.Existing++
		}
	}
	return sum
}

// renderReport builds the plain-text run report used by the file, clipboard
// and PDF sinks.
func renderReport(outcomes []Outcome, sum runSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "dirforge: template %s -> %s\n\n", sum.Template, sum.Root)
	for _, o := range outcomes {
		fmt.Fprintf(&b, "%-7s %s\n", outcomeLabel(o), o.Path)
	}
	fmt.Fprintf(&b, "\ncreated %d, already existing %d\n", sum.Created, sum.Existing)
	return b.String()
}

// deliverReport sends the plain-text report to whichever extra sinks were
// requested. Stdout is handled separately, as outcomes stream while the run
// progresses. A failed sink is reported but does not fail the run: the
// directories were already created.
func deliverReport(report string) {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(report), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
		} else {
			fmt.Printf("Report saved to %s\n", outputFile)
		}
	}
	if copyToClipboard {
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to clipboard: %v\n", err)
		} else {
			fmt.Println("Report copied to clipboard.")
		}
	}
	if pdfOutputFile != "" {
		if err := writeReportPDF(report, pdfOutputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating PDF report: %v\n", err)
		} else {
			fmt.Printf("Report saved to %s\n", pdfOutputFile)
		}
	}
}
