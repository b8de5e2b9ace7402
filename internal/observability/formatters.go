// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/lee777maker/Job-Applier-sub000/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchScore outputs a human-readable summary of a match analysis.
func (p *Printer) PrintMatchScore(result *types.MatchScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS score:   %d/100\n", result.ATSScore))
	sb.WriteString(fmt.Sprintf("Match score: %.0f%%\n", result.MatchScore*100))
	appendItems(&sb, "Strengths", result.Strengths)
	appendItems(&sb, "Gaps", result.Gaps)
	appendItems(&sb, "Keywords to add", result.KeywordsToAdd)
	appendItems(&sb, "Recommended bullets", result.RecommendedBullets)

	p.printBox("Match Analysis", strings.TrimRight(sb.String(), "\n"))
}

// PrintJobs outputs a summary of the recommended jobs list.
func (p *Printer) PrintJobs(jobs []types.Job) {
	if len(jobs) == 0 {
		return
	}

	var sb strings.Builder
	shown := jobs
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	for _, job := range shown {
		sb.WriteString(fmt.Sprintf("%3d%%  %s at %s\n", job.MatchPercent(), job.Title, job.Company))
	}
	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(jobs)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("Recommendations (%d)", len(jobs)), strings.TrimRight(sb.String(), "\n"))
}

func appendItems(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(label + ":\n")
	shown := items
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	for _, item := range shown {
		sb.WriteString("  - " + item + "\n")
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
