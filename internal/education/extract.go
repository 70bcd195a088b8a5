package education

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// phdContextRadius is how many characters around a PhD mention are searched for status words
const phdContextRadius = 100

var (
	singleYearRE   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	dateWithYearRE = regexp.MustCompile(`\d{1,2}[./-]\d{1,2}[./-](\d{2,4})`)
	phdMentionRE   = regexp.MustCompile(`ph\.?\s*d\.?|phd`)
	parentheticRE  = regexp.MustCompile(`\(([^)]+)\)`)
	yearDigitsRE   = regexp.MustCompile(`\d{2,4}`)
	inWordRE       = regexp.MustCompile(`(?i) in `)
	institutionRE  = regexp.MustCompile(`([A-Z][A-Za-z0-9&., ]+\b(?:University|College|Institute|School|Academy|Polytechnic|High School))`)
	atFromRE       = regexp.MustCompile(`\b(?:at|from)\s+([A-Z][A-Za-z0-9&., ]{3,})`)
)

var (
	fieldSeparators     = []string{",", "|", "-", "–", " at ", " from "}
	institutionKeywords = []string{"university", "college", "institute", "school", "academy", "polytechnic"}
	pursuingMarkers     = []string{"pursuing", "ongoing", "currently", "in progress"}
)

// ExtractSection returns the lines from the first education heading up to the
// next section boundary heading. The whole text is returned when no education
// heading exists.
func ExtractSection(text string) string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if parsing.IsEducationHeading(strings.TrimSpace(line)) {
			start = i
			break
		}
	}
	if start < 0 {
		return text
	}

	end := len(lines)
	for j := start + 1; j < len(lines); j++ {
		line := strings.TrimSpace(lines[j])
		if line == "" {
			continue
		}
		if parsing.IsBoundaryHeading(line) {
			end = j
			break
		}
	}

	section := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
	if section == "" {
		return text
	}
	return section
}

// PhDStatus inspects the text around every PhD mention. "awarded" anywhere in
// a window wins outright; otherwise the first thesis or pursuing signal is
// returned. The empty status means nothing was found.
func PhDStatus(text string) types.DegreeStatus {
	low := strings.ToLower(text)
	var statuses []types.DegreeStatus

	for _, loc := range phdMentionRE.FindAllStringIndex(low, -1) {
		window := parsing.Window(low, loc[0], loc[1], phdContextRadius)
		if strings.Contains(window, "awarded") {
			return types.StatusAwarded
		}
		if strings.Contains(window, "thesis submitted") || strings.Contains(window, "submitted thesis") {
			statuses = append(statuses, types.StatusThesisSubmitted)
		}
		if parsing.ContainsAny(window, pursuingMarkers) {
			statuses = append(statuses, types.StatusPursuing)
		}
	}

	if len(statuses) == 0 {
		return ""
	}
	return statuses[0]
}

// ExtractYears returns the start and end year of a degree block. A year range
// gives both (end is nil when open). Otherwise the last standalone year, then
// the last numeric date, is taken as the end year.
func ExtractYears(text string, now time.Time) (start, end *int) {
	if r, ok := parsing.FindYearRange(text); ok {
		s := r.Start
		return &s, r.End
	}

	if years := singleYearRE.FindAllString(text, -1); len(years) > 0 {
		y := parsing.NormalizeYear(years[len(years)-1], now)
		return nil, &y
	}

	if dates := dateWithYearRE.FindAllStringSubmatch(text, -1); len(dates) > 0 {
		y := parsing.NormalizeYear(dates[len(dates)-1][1], now)
		return nil, &y
	}

	return nil, nil
}

// ExtractFieldAndInstitution pulls the field of study and institution out of a degree block.
// The field comes from a parenthetical, else the text after " in ", else the
// text right after the degree name.
func ExtractFieldAndInstitution(block string) (field, institution *string) {
	if m := parentheticRE.FindStringSubmatch(block); m != nil {
		if raw := strings.TrimSpace(m[1]); plausibleField(raw) {
			field = &raw
		}
	}

	if field == nil {
		if loc := inWordRE.FindStringIndex(block); loc != nil {
			if f := cutField(block[loc[1]:]); plausibleField(f) {
				field = &f
			}
		}
	}

	if field == nil {
		if loc, ok := firstDegreeToken(block); ok {
			f := cutField(strings.TrimLeft(block[loc[1]:], " ,.-–:|"))
			if plausibleField(f) && !parsing.ContainsAny(strings.ToLower(f), institutionKeywords) {
				field = &f
			}
		}
	}

	m := institutionRE.FindStringSubmatch(block)
	if m == nil {
		m = atFromRE.FindStringSubmatch(block)
	}
	if m != nil {
		inst := strings.Trim(m[1], " ,.-")
		institution = &inst
	}

	return field, institution
}

// cutField keeps the text before the first separator, checking separators in order
func cutField(s string) string {
	for _, sep := range fieldSeparators {
		if idx := strings.Index(s, sep); idx >= 0 {
			s = s[:idx]
			break
		}
	}
	return strings.Trim(s, " ,.-–")
}

func plausibleField(s string) bool {
	return utf8.RuneCountInString(s) > 2 && !yearDigitsRE.MatchString(s)
}

// ExtractDegrees splits the education text into blocks and builds one record
// per block that names a degree. A block starts at a line naming a degree, or
// at a line with both a year and an institution word. fullText is scanned for
// the overall PhD status.
func ExtractDegrees(educationText, fullText string, now time.Time) []types.DegreeRecord {
	blocks := splitBlocks(educationText)
	if len(blocks) == 0 {
		return []types.DegreeRecord{}
	}

	globalPhD := PhDStatus(fullText)
	records := make([]types.DegreeRecord, 0, len(blocks))

	for _, block := range blocks {
		full := strings.Join(block, " ")
		fullLow := strings.ToLower(full)

		degrees := DetectDegrees(full)
		if len(degrees) == 0 {
			degrees = DetectDegrees(block[0])
		}
		if len(degrees) == 0 {
			continue
		}

		rec := types.DegreeRecord{
			DegreeType: HighestDegree(degrees),
			RawText:    full,
			Status:     types.StatusCompleted,
		}
		rec.StartYear, rec.EndYear = ExtractYears(full, now)
		rec.FieldOfStudy, rec.Institution = ExtractFieldAndInstitution(full)

		if parsing.ContainsAny(fullLow, pursuingMarkers) || strings.Contains(fullLow, "present") {
			rec.Status = types.StatusPursuing
		}
		if rec.EndYear == nil && rec.StartYear != nil {
			rec.Status = types.StatusPursuing
		}

		if rec.DegreeType == types.DegreePhD {
			applyPhDStatus(&rec, globalPhD, fullLow)
		}

		records = append(records, rec)
	}

	return records
}

// applyPhDStatus layers the document-wide PhD status and then the block's own wording onto a PhD record
func applyPhDStatus(rec *types.DegreeRecord, global types.DegreeStatus, blockLow string) {
	thesis, awarded := false, false

	switch global {
	case types.StatusAwarded:
		rec.Status = types.StatusAwarded
		awarded = true
	case types.StatusThesisSubmitted:
		rec.Status = types.StatusThesisSubmitted
		thesis = true
	case types.StatusPursuing:
		rec.Status = types.StatusPursuing
	}

	if strings.Contains(blockLow, "thesis submitted") {
		rec.Status = types.StatusThesisSubmitted
		thesis = true
	}
	if strings.Contains(blockLow, "awarded") {
		rec.Status = types.StatusAwarded
		awarded = true
	}

	rec.PhDThesisSubmitted = &thesis
	rec.PhDAwarded = &awarded
}

func splitBlocks(educationText string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range strings.Split(educationText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		low := strings.ToLower(line)

		hasYear := singleYearRE.MatchString(low)
		hasInstitution := parsing.ContainsAny(low, institutionKeywords)

		if HasDegreeMention(low) || (hasYear && hasInstitution) {
			if len(current) > 0 {
				blocks = append(blocks, current)
			}
			current = []string{line}
			continue
		}
		if len(current) > 0 {
			current = append(current, line)
		}
	}

	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}
