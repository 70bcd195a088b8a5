// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
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

// PrintAnalysis outputs every section of an analysis in display order.
func (p *Printer) PrintAnalysis(fileName string, result *types.AnalysisResult) {
	if result == nil {
		return
	}
	p.PrintContact(fileName, &result.ContactInfo)
	p.PrintEducation(&result.Education)
	p.PrintExperience(&result.Experience)
	p.PrintSkills(result.Skills)
	p.PrintScore(result.Score, result.Publications)
}

// PrintContact outputs the identity and contact fields.
func (p *Printer) PrintContact(fileName string, contact *types.ContactInfo) {
	if contact == nil {
		return
	}

	var sb strings.Builder
	if fileName != "" {
		sb.WriteString(fmt.Sprintf("File:     %s\n", fileName))
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(contact.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(contact.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(contact.Phone)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orDash(contact.Location)))
	if contact.CurrentRole != nil || contact.CurrentOrganization != nil {
		sb.WriteString(fmt.Sprintf("Current:  %s @ %s\n", orDash(contact.CurrentRole), orDash(contact.CurrentOrganization)))
	}
	if contact.LinkedIn != nil {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", *contact.LinkedIn))
	}
	if contact.GitHub != nil {
		sb.WriteString(fmt.Sprintf("GitHub:   %s\n", *contact.GitHub))
	}

	p.printBox("CONTACT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEducation outputs the highest degree and the degree records.
func (p *Printer) PrintEducation(edu *types.EducationSummary) {
	if edu == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Highest:    %s\n", edu.HighestDegree))
	sb.WriteString(fmt.Sprintf("Department: %s\n", edu.Department))
	if edu.HasPhD {
		sb.WriteString(fmt.Sprintf("PhD:        %s - %s\n", intOrDash(edu.PhDStartYear), intOrDash(edu.PhDEndYear)))
	}

	if len(edu.Degrees) > 0 {
		sb.WriteString("\nDegrees:\n")
		count := min(len(edu.Degrees), maxItemsToShow)
		for i := 0; i < count; i++ {
			deg := edu.Degrees[i]
			sb.WriteString(fmt.Sprintf("  • %s", deg.DegreeType))
			if deg.FieldOfStudy != nil {
				sb.WriteString(fmt.Sprintf(" in %s", *deg.FieldOfStudy))
			}
			sb.WriteString(fmt.Sprintf(" (%s)\n", deg.Status))
			if deg.Institution != nil {
				sb.WriteString(fmt.Sprintf("    %s\n", *deg.Institution))
			}
		}
		if len(edu.Degrees) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(edu.Degrees)-maxItemsToShow))
		}
	}

	p.printBox("EDUCATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs the per-category totals and the experience table.
func (p *Printer) PrintExperience(exp *types.ExperienceSummary) {
	if exp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Teaching: %s  Industry: %s  Other: %s\n",
		yearsOrDash(exp.Years.Teaching), yearsOrDash(exp.Years.Industry), yearsOrDash(exp.Years.Other)))
	sb.WriteString(fmt.Sprintf("Total:    %s\n", yearsOrDash(exp.Years.Total)))

	if len(exp.Rows) > 0 {
		sb.WriteString("\n")
		count := min(len(exp.Rows), maxItemsToShow)
		for i := 0; i < count; i++ {
			row := exp.Rows[i]
			sb.WriteString(fmt.Sprintf("• %s [%s]\n", row.Organization, row.ExperienceType))
			sb.WriteString(fmt.Sprintf("  %s → %s (%s yrs)\n", row.JoiningDate, row.RelievingDate, yearsOrDash(row.DurationYears)))
		}
		if len(exp.Rows) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more entries\n", len(exp.Rows)-maxItemsToShow))
		}
	}

	p.printBox("EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs matched skills grouped by catalog category.
func (p *Printer) PrintSkills(skillSet types.SkillSet) {
	all := skillSet[types.AllSkillsKey]
	if len(all) == 0 {
		return
	}

	categories := make([]string, 0, len(skillSet))
	for category := range skillSet {
		if category != types.AllSkillsKey {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d skills:\n\n", len(all)))
	for _, category := range categories {
		skills := strings.Join(skillSet[category], ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", category, skills))
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the publication counts and the final score.
func (p *Printer) PrintScore(score int, pubs types.PublicationCounts) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Publications: %d (articles %d, books %d, conferences %d)\n",
		pubs.Total, pubs.Articles, pubs.Books, pubs.Conferences))
	sb.WriteString(fmt.Sprintf("Score:        %d", score))

	p.printBox("SCORE", sb.String())
}

// PrintSections outputs the section labels with a preview of each body.
func (p *Printer) PrintSections(sections types.Sections) {
	if len(sections) == 0 {
		return
	}

	labels := make([]string, 0, len(sections))
	for label := range sections {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var sb strings.Builder
	for i, label := range labels {
		body := strings.ReplaceAll(sections[label], "\n", " ")
		if len(body) > 45 {
			body = body[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s\n  %s", label, body))
		if i < len(labels)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SECTIONS", sb.String())
}

// PrintBatchSummary outputs one line per analyzed document.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchSummary(envelopes []types.AnalysisEnvelope) {
	if len(envelopes) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO DOCUMENTS ANALYZED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analyzed %d documents:\n\n", len(envelopes)))
	for _, env := range envelopes {
		sb.WriteString(fmt.Sprintf("%-30s %-8s %3d\n", env.FileName, env.Advanced.Education.HighestDegree, env.Advanced.Score))
	}

	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func yearsOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
