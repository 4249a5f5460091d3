// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreReport outputs the overall score, per-section breakdown, and verdict.
func (p *Printer) PrintScoreReport(report *types.ATSScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %d/100", report.Overall))
	if report.PassesATS {
		sb.WriteString("  (PASS)")
	} else {
		sb.WriteString("  (FAIL)")
	}
	sb.WriteString("\n\n")

	for _, section := range report.Sections {
		sb.WriteString(fmt.Sprintf("%-12s %5.1f / %d\n", section.Name, section.Score, section.MaxScore))
	}

	sb.WriteString("\n")
	sb.WriteString(report.Summary)

	p.printBox("ATS COMPATIBILITY SCORE", sb.String())
}

// PrintIssues outputs the severity-sorted issue list.
func (p *Printer) PrintIssues(issues []types.Issue) {
	if len(issues) == 0 {
		p.printBox("ISSUES", "✅ No issues found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issue(s):\n\n", len(issues)))

	count := min(len(issues), maxItemsToShow)
	for i := 0; i < count; i++ {
		issue := issues[i]
		sb.WriteString(fmt.Sprintf("⚠ [%s] %s\n", issue.Severity, issue.Title))
		details := issue.Details
		if len(details) > 50 {
			details = details[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(issues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more issues", len(issues)-maxItemsToShow))
	}

	p.printBox("ISSUES", sb.String())
}

// PrintKeywordMatches outputs the keyword overlap report.
func (p *Printer) PrintKeywordMatches(matches []types.KeywordMatch) {
	if len(matches) == 0 {
		p.printBox("KEYWORD MATCHES", "No important phrases extracted")
		return
	}

	found := 0
	for _, m := range matches {
		if m.Found {
			found++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d of %d phrases:\n\n", found, len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		mark := "✗"
		if m.Found {
			mark = "✓"
		}
		phrase := m.Phrase
		if len(phrase) > 35 {
			phrase = phrase[:32] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %-38s ×%d\n", mark, phrase, m.Count))
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more phrases", len(matches)-maxItemsToShow))
	}

	p.printBox("KEYWORD MATCHES", sb.String())
}
