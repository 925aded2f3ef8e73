// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintResume outputs a human-readable summary of a resume record.
func (p *Printer) PrintResume(title string, resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", orDash(resume.Contact.Name)))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", orDash(resume.Contact.Email)))
	sb.WriteString(fmt.Sprintf("Summary:    %s\n", orDash(truncate(resume.Summary, 40))))
	sb.WriteString(fmt.Sprintf("Experience: %d positions (%d bullets)\n",
		len(resume.Experience), countBullets(resume)))
	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Skills:     %d", len(resume.Skills)))

	shown := resume.Skills
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	if len(shown) > 0 {
		sb.WriteString(" (" + strings.Join(shown, ", "))
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(", ...")
		}
		sb.WriteString(")")
	}

	p.printBox(title, sb.String())
}

// PrintTailorDiff summarizes what the tailoring pass changed.
func (p *Printer) PrintTailorDiff(before, after *types.Resume) {
	if before == nil || after == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Summary rewritten:  %t\n", before.Summary != after.Summary))
	sb.WriteString(fmt.Sprintf("Bullets:            %d -> %d\n", countBullets(before), countBullets(after)))
	sb.WriteString(fmt.Sprintf("Skills:             %d -> %d", len(before.Skills), len(after.Skills)))

	p.printBox("Tailoring changes", sb.String())
}

func countBullets(r *types.Resume) int {
	n := 0
	for _, e := range r.Experience {
		n += len(e.Bullets)
	}
	return n
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
