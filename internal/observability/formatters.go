// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// PrintChunks outputs how the text was split
func (p *Printer) PrintChunks(chunks []types.Chunk) {
	if len(chunks) == 0 {
		return
	}

	var sb strings.Builder
	total := 0
	for _, c := range chunks {
		total += len(c.Text)
	}
	sb.WriteString(fmt.Sprintf("%d chunks, %d characters\n\n", len(chunks), total))

	count := min(len(chunks), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", chunks[i].Index, chunks[i].Text))
	}
	if len(chunks) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more chunks\n", len(chunks)-maxItemsToShow))
	}

	p.printBox("CHUNKS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintClassification outputs the chunk indices routed to each section.
func (p *Printer) PrintClassification(m types.ClassificationMap) {
	if m == nil {
		return
	}

	var sb strings.Builder
	for _, category := range types.AllCategories {
		indices := m[category]
		if len(indices) == 0 {
			sb.WriteString(fmt.Sprintf("%-18s (none)\n", category))
			continue
		}
		parts := make([]string, len(indices))
		for i, idx := range indices {
			parts[i] = fmt.Sprint(idx)
		}
		sb.WriteString(fmt.Sprintf("%-18s %s\n", category, strings.Join(parts, ", ")))
	}

	p.printBox("CHUNK CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeRecord outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResumeRecord(r *types.ResumeRecord) {
	if r == nil {
		return
	}

	var sb strings.Builder

	name := strings.Join(strings.Fields(strings.Join([]string{r.FirstName, r.MiddleName, r.LastName}, " ")), " ")
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(r.PrimaryEmail)))
	phone := r.PhoneNumber
	if phone != "" && r.CountryCode != "" {
		phone = r.CountryCode + " " + phone
	}
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(phone)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orDash(strings.Trim(r.City+", "+r.State, ", "))))
	if r.ExperienceYears != "" {
		sb.WriteString(fmt.Sprintf("Experience: %s years\n", r.ExperienceYears))
	}
	sb.WriteString("\n")

	if len(r.Jobs) > 0 {
		sb.WriteString("Jobs:\n")
		count := min(len(r.Jobs), maxItemsToShow)
		for i := 0; i < count; i++ {
			job := r.Jobs[i]
			to := job.ToDate
			if job.IsCurrentlyWorking {
				to = "present"
			}
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s to %s)\n",
				orDash(job.Designation), orDash(job.CompanyName), orDash(job.FromDate), orDash(to)))
		}
		if len(r.Jobs) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Jobs)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(r.Projects) > 0 {
		sb.WriteString("Projects:\n")
		count := min(len(r.Projects), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", orDash(r.Projects[i].ProjectTitle)))
		}
		if len(r.Projects) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Projects)-3))
		}
		sb.WriteString("\n")
	}

	if len(r.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, e := range r.Education {
			sb.WriteString(fmt.Sprintf("  • %s %s, %s\n", orDash(e.Qualification), e.Degree, orDash(e.College)))
		}
		sb.WriteString("\n")
	}

	if len(r.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(r.Skills, ", ")))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}
