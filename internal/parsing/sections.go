package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// GeneralSection labels lines that appear before the first recognized header
const GeneralSection = "GENERAL"

const maxHeaderWords = 5

var sectionHeaders = map[string]bool{
	"SUMMARY":                 true,
	"PROFILE":                 true,
	"OBJECTIVE":               true,
	"EXPERIENCE":              true,
	"WORK EXPERIENCE":         true,
	"PROFESSIONAL EXPERIENCE": true,
	"EMPLOYMENT":              true,
	"EDUCATION":               true,
	"SKILLS":                  true,
	"TECHNICAL SKILLS":        true,
	"PROJECTS":                true,
	"CERTIFICATIONS":          true,
	"AWARDS":                  true,
	"PUBLICATIONS":            true,
	"INTERNSHIPS":             true,
}

var upperHeaderRE = regexp.MustCompile(`^[A-Z][A-Z &/]+$`)

// IsSectionHeader reports whether a line is a known header, or a short all-caps line
func IsSectionHeader(line string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return false
	}
	if sectionHeaders[strings.ToUpper(stripped)] {
		return true
	}
	return upperHeaderRE.MatchString(stripped) && len(strings.Fields(stripped)) <= maxHeaderWords
}

// ExtractSections splits lines into labeled sections. Lines before the first
// header go to GENERAL. Headers with no content after them are dropped.
func ExtractSections(lines []string) types.Sections {
	collected := make(map[string][]string)
	current := GeneralSection

	for _, line := range lines {
		if IsSectionHeader(line) {
			current = strings.ToUpper(strings.TrimSpace(line))
			if _, ok := collected[current]; !ok {
				collected[current] = nil
			}
			continue
		}
		collected[current] = append(collected[current], line)
	}

	sections := make(types.Sections, len(collected))
	for label, content := range collected {
		if len(content) == 0 || strings.TrimSpace(content[0]) == "" {
			continue
		}
		sections[label] = strings.Join(content, "\n")
	}
	return sections
}
