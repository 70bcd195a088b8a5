package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var publicationStartTitles = []string{
	"details of research publications",
	"research publications",
	"research experience",
	"journal papers",
	"publications",
}

var publicationEndTitles = []string{
	"faculty development",
	"refresher courses",
	"work experience",
	"professional experience",
	"employment history",
	"teaching",
	"declaration",
}

var (
	publicationEntryRE = regexp.MustCompile(`^\s*(\d+\s*[).]|-\s)`)
	bookMarkers        = []string{"book", "isbn", "chapter"}
	articleMarkers     = []string{"journal", "volume", "issue", "issn", "paper published"}
	conferenceMarkers  = []string{"conference", "seminar", "symposium"}
)

// CountPublications counts numbered or dashed entries in the publications
// region and classifies each as a book, article or conference paper.
// Entries matching nothing count as articles.
func CountPublications(text string) types.PublicationCounts {
	var counts types.PublicationCounts

	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if ContainsAny(strings.ToLower(line), publicationStartTitles) {
			start = i
			break
		}
	}
	if start < 0 {
		return counts
	}

	end := len(lines)
	for j := start + 1; j < len(lines); j++ {
		if ContainsAny(strings.ToLower(lines[j]), publicationEndTitles) {
			end = j
			break
		}
	}

	for _, line := range lines[start:end] {
		if !publicationEntryRE.MatchString(line) {
			continue
		}
		counts.Total++

		low := strings.ToLower(line)
		switch {
		case ContainsAny(low, bookMarkers):
			counts.Books++
		case ContainsAny(low, articleMarkers):
			counts.Articles++
		case ContainsAny(low, conferenceMarkers):
			counts.Conferences++
		default:
			counts.Articles++
		}
	}
	return counts
}
