// Package education isolates the education section of a résumé and turns it
// into degree records.
package education

import (
	"regexp"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/types"
)

type degreePattern struct {
	re     *regexp.Regexp
	degree types.DegreeType
}

// degreePatterns is the matching order. It carries no priority.
var degreePatterns = compileDegreePatterns([]struct {
	pattern string
	degree  types.DegreeType
}{
	// PhD / Doctorate
	{`\bphd\b`, types.DegreePhD},
	{`\bph\.?\s*d\.?\b`, types.DegreePhD},
	{`\bdoctor of philosophy\b`, types.DegreePhD},
	{`\bdoctoral (degree|studies|candidate)\b`, types.DegreePhD},
	{`\bdphil\b`, types.DegreePhD},

	// Master's level
	{`\bmaster[’']?s?\s+degree\b`, types.DegreeMaster},
	{`\bm\.?\s*tech\b`, types.DegreeMaster},
	{`\bmaster of technology\b`, types.DegreeMaster},
	{`\bm\.?\s*e\b`, types.DegreeMaster},
	{`\bmaster of engineering\b`, types.DegreeMaster},
	{`\bm\.?\s*sc\b`, types.DegreeMaster},
	{`\bmaster of science\b`, types.DegreeMaster},
	{`\bm\.?\s*a\b`, types.DegreeMaster},
	{`\bmaster of arts\b`, types.DegreeMaster},
	{`\bm\.?\s*com\b`, types.DegreeMaster},
	{`\bmaster of commerce\b`, types.DegreeMaster},
	{`\bmca\b`, types.DegreeMaster},
	{`\bmaster of computer applications\b`, types.DegreeMaster},
	{`\bmba\b`, types.DegreeMaster},
	{`\bmaster of business administration\b`, types.DegreeMaster},
	{`\bmpm\b`, types.DegreeMaster},
	{`\bmpa\b`, types.DegreeMaster},
	{`\bpgdm\b`, types.DegreeMaster},
	{`\bpost[-\s]graduate diploma\b`, types.DegreeMaster},
	{`\bpost[-\s]graduation\b`, types.DegreeMaster},

	// Bachelor's level
	{`\bb\.?\s*tech\b`, types.DegreeBachelor},
	{`\bbtech\b`, types.DegreeBachelor},
	{`\bb\.?\s*e\b`, types.DegreeBachelor},
	{`\bbachelor of engineering\b`, types.DegreeBachelor},
	{`\bb\.?\s*sc\b`, types.DegreeBachelor},
	{`\bbachelor of science\b`, types.DegreeBachelor},
	{`\bbsc\b`, types.DegreeBachelor},
	{`\bb\.?\s*a\b`, types.DegreeBachelor},
	{`\bbachelor of arts\b`, types.DegreeBachelor},
	{`\bb\.?\s*com\b`, types.DegreeBachelor},
	{`\bbachelor of commerce\b`, types.DegreeBachelor},
	{`\bbcom\b`, types.DegreeBachelor},
	{`\bbca\b`, types.DegreeBachelor},
	{`\bbachelor of computer applications\b`, types.DegreeBachelor},
	{`\bbba\b`, types.DegreeBachelor},
	{`\bbachelor of business administration\b`, types.DegreeBachelor},
	{`\bbs\b`, types.DegreeBachelor},
	{`\bb\.?\s*s\b`, types.DegreeBachelor},

	// Diploma / School
	{`\bdiploma\b`, types.DegreeDiploma},
	{`\bpolytechnic\b`, types.DegreeDiploma},
	{`\bassociate degree\b`, types.DegreeDiploma},
	{`\bintermediate\b`, types.DegreeHighSchool},
	{`\bsenior secondary\b`, types.DegreeHighSchool},
	{`\bhigher secondary\b`, types.DegreeHighSchool},
	{`\bhigh school\b`, types.DegreeHighSchool},
	{`\b10th\s*(class|standard|grade)\b`, types.DegreeHighSchool},
	{`\b12th\s*(class|standard|grade)\b`, types.DegreeHighSchool},
	{`\bssc\b`, types.DegreeHighSchool},
	{`\bhsc\b`, types.DegreeHighSchool},
})

// degreePriority is the strict ranking used to pick a highest degree
var degreePriority = map[types.DegreeType]int{
	types.DegreeHighSchool: 1,
	types.DegreeDiploma:    2,
	types.DegreeBachelor:   3,
	types.DegreeMaster:     4,
	types.DegreePhD:        5,
}

func compileDegreePatterns(entries []struct {
	pattern string
	degree  types.DegreeType
}) []degreePattern {
	patterns := make([]degreePattern, 0, len(entries))
	for _, e := range entries {
		patterns = append(patterns, degreePattern{
			re:     regexp.MustCompile(`(?i)` + e.pattern),
			degree: e.degree,
		})
	}
	return patterns
}

// Priority returns the rank of a degree type, 0 for Unknown
func Priority(degree types.DegreeType) int {
	return degreePriority[degree]
}

// DetectDegrees returns the distinct degree types mentioned in text, in pattern order
func DetectDegrees(text string) []types.DegreeType {
	var found []types.DegreeType
	seen := make(map[types.DegreeType]bool)
	for _, p := range degreePatterns {
		if seen[p.degree] || !p.re.MatchString(text) {
			continue
		}
		seen[p.degree] = true
		found = append(found, p.degree)
	}
	return found
}

// HasDegreeMention reports whether any degree pattern matches text
func HasDegreeMention(text string) bool {
	for _, p := range degreePatterns {
		if p.re.MatchString(text) {
			return true
		}
	}
	return false
}

// firstDegreeToken returns the byte span of the earliest degree mention in text
func firstDegreeToken(text string) ([]int, bool) {
	var best []int
	for _, p := range degreePatterns {
		loc := p.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if best == nil || loc[0] < best[0] || (loc[0] == best[0] && loc[1] > best[1]) {
			best = loc
		}
	}
	return best, best != nil
}

// HighestDegree returns the degree with the greatest priority, or Unknown for an empty list
func HighestDegree(degrees []types.DegreeType) types.DegreeType {
	best := types.DegreeUnknown
	bestPriority := 0
	for _, d := range degrees {
		if p := degreePriority[d]; p > bestPriority {
			best = d
			bestPriority = p
		}
	}
	return best
}

// SortByPriority returns the distinct degrees ordered from highest to lowest priority
func SortByPriority(degrees []types.DegreeType) []types.DegreeType {
	seen := make(map[types.DegreeType]bool)
	sorted := make([]types.DegreeType, 0, len(degrees))
	for _, d := range degrees {
		if seen[d] {
			continue
		}
		seen[d] = true
		sorted = append(sorted, d)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return degreePriority[sorted[i]] > degreePriority[sorted[j]]
	})
	return sorted
}
