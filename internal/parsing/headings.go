package parsing

import (
	"strings"
	"unicode/utf8"
)

var educationTitles = []string{
	"education",
	"educational qualification",
	"educational qualifications",
	"academic background",
	"academic qualifications",
	"qualifications",
	"education & training",
}

var boundaryTitles = []string{
	"experience",
	"work experience",
	"professional experience",
	"employment history",
	"work history",
	"projects",
	"skills",
	"technical skills",
	"publications",
	"research",
	"certifications",
	"achievements",
	"summary",
	"objective",
	"profile",
	"declaration",
}

// ContainsAny reports whether s contains any of the substrings
func ContainsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// IsEducationHeading reports whether a line mentions an education section title
func IsEducationHeading(line string) bool {
	return ContainsAny(strings.ToLower(line), educationTitles)
}

// IsBoundaryHeading reports whether a line mentions a title that ends the education section
func IsBoundaryHeading(line string) bool {
	return ContainsAny(strings.ToLower(line), boundaryTitles)
}

// Window returns text[start:end] widened by radius characters on each side.
// start and end are byte offsets on rune boundaries.
func Window(text string, start, end, radius int) string {
	lo := start
	for i := 0; i < radius && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:lo])
		lo -= size
	}
	hi := end
	for i := 0; i < radius && hi < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[hi:])
		hi += size
	}
	return text[lo:hi]
}
