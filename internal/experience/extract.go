package experience

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// headerLookback is how many lines above a dated line may join its header
	headerLookback = 2
	// descriptionLookahead is how many lines below a dated line may form its description
	descriptionLookahead = 9
)

const headerCutset = " ,.-–"

var (
	numberedLineRE = regexp.MustCompile(`^\d+[\).\s]`)
	orgEntityRE    = regexp.MustCompile(`[A-Z][A-Za-z0-9&(). ]+\b(?:University|College|Institute|School|Academy|Bank|Limited|Ltd|Company|Corporation|Supermarts|Retail|Group|Technologies|Solutions|Systems|Hospital|Centre|Center|Laboratories|Labs)`)
	roleSplitRE    = regexp.MustCompile(`[-–]`)
	spaceRunRE     = regexp.MustCompile(`\s+`)
)

var jobTitleKeywords = []string{
	"assistant professor", "associate professor", "professor", "lecturer", "teacher",
	"head of the department", "hod", "consultant", "manager", "executive", "engineer",
	"developer", "associate", "officer", "analyst", "instructor", "faculty",
	"accounts", "accountant", "audit", "auditor",
}

// jobTitleRE finds the leftmost job keyword in the original casing, so its
// offsets index the unlowered header
var jobTitleRE = func() *regexp.Regexp {
	quoted := make([]string, len(jobTitleKeywords))
	for i, kw := range jobTitleKeywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return regexp.MustCompile(`(?i)` + strings.Join(quoted, "|"))
}()

var adminRE = regexp.MustCompile(`(?i)university administration`)

var orgKeywords = []string{
	"university", "college", "institute", "school", "academy", "company",
	"limited", "ltd", "supermarts", "retail", "bank",
}

var extraStopHeadings = []string{
	"research experience", "journal papers", "publications",
	"faculty development programs", "fdp", "fdps", "conferences",
}

var (
	teachingKeywords = []string{
		"professor", "assistant professor", "associate professor", "lecturer", "teacher",
		"faculty", "school", "college", "university", "institute", "academy",
	}
	industryKeywords = []string{
		"developer", "software", "engineer", "company", "pvt", "ltd", "limited", "solutions",
		"consultant", "analyst", "manager", "industry", "it services", "technologies", "firm",
		"corporation", "llc", "startup", "audit", "auditor", "accounts", "accountant", "bank",
		"retail", "supermarts",
	}
	strongIndustryKeywords = []string{
		"manager", "executive", "associate", "analyst", "engineer", "developer", "audit",
		"auditor", "accounts", "accountant", "process associate", "supermarts", "retail",
		"bank", "pvt", "ltd", "limited",
	}
	strongTeachingKeywords = []string{
		"professor", "lecturer", "teacher", "faculty", "school", "college", "university",
		"institute", "academy",
	}
)

// teachingOrgKeywords mark an organization name as an academic employer
var teachingOrgKeywords = []string{"college", "school", "university", "institute", "academy"}

// ExtractHistory finds every line carrying a date range and turns it into a
// work history record. The header is the dated line plus up to two preceding
// title or organization lines; the description is the following lines up to
// the next dated line or heading. Lines without a job keyword nearby, and
// ranges that do not move forward in time, are skipped. Records are returned
// newest first.
func ExtractHistory(text string, now time.Time) []types.ExperienceRecord {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	records := make([]types.ExperienceRecord, 0)
	for idx, line := range lines {
		if line == "" {
			continue
		}
		span, ok := parseLineDate(line, now)
		if !ok {
			continue
		}

		header := buildHeader(lines, idx, span, now)
		desc := collectDescription(lines, idx, now)
		combined := strings.ToLower(header + " " + strings.Join(desc, " "))
		if !parsing.ContainsAny(combined, jobTitleKeywords) {
			continue
		}

		months := span.months(now)
		if months <= 0 {
			continue
		}

		title, org, location := parseRoleOrgLocation(header)
		rec := types.ExperienceRecord{
			Title:          title,
			Organization:   org,
			Location:       location,
			Category:       categorize(combined, title, org),
			StartYear:      intPtr(span.fromYear),
			StartMonth:     intPtr(span.fromMonth),
			Ongoing:        span.ongoing,
			DurationMonths: intPtr(months),
			StartDate:      strPtr(parsing.FormatMonthYear(span.fromYear, span.fromMonth)),
			RawText:        line,
		}
		if span.ongoing {
			rec.EndDate = strPtr("Present")
		} else {
			rec.EndYear = intPtr(span.toYear)
			rec.EndMonth = intPtr(span.toMonth)
			rec.EndDate = strPtr(parsing.FormatMonthYear(span.toYear, span.toMonth))
		}
		if len(desc) > 0 {
			joined := strings.Join(desc, " ")
			rec.Description = &joined
			rec.RawText = line + " " + joined
		}

		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if *records[i].StartYear != *records[j].StartYear {
			return *records[i].StartYear > *records[j].StartYear
		}
		return *records[i].StartMonth > *records[j].StartMonth
	})
	return records
}

// buildHeader strips the date from the dated line, prepends a nearby title or
// organization line, and drops any lead-in before the first job keyword or
// organization name.
func buildHeader(lines []string, idx int, span dateSpan, now time.Time) string {
	parts := []string{strings.Trim(strings.ReplaceAll(lines[idx], span.text, " "), headerCutset)}

	for back := 1; back <= headerLookback && idx-back >= 0; back++ {
		prev := lines[idx-back]
		if prev == "" {
			continue
		}
		if _, dated := parseLineDate(prev, now); dated {
			continue
		}
		if ingestion.IsBulletLine(prev) || numberedLineRE.MatchString(prev) || isStopHeading(prev) {
			continue
		}
		low := strings.ToLower(prev)
		if parsing.ContainsAny(low, jobTitleKeywords) || parsing.ContainsAny(low, orgKeywords) {
			parts = append([]string{prev}, parts...)
			break
		}
	}

	header := strings.TrimSpace(strings.Join(parts, " "))
	if cut := leadInEnd(header); cut > 0 {
		header = strings.TrimLeft(header[cut:], headerCutset)
	}
	return header
}

// leadInEnd returns the earliest offset of a job keyword or organization name, or -1
func leadInEnd(header string) int {
	cut := -1
	if loc := jobTitleRE.FindStringIndex(header); loc != nil {
		cut = loc[0]
	}
	for _, loc := range orgEntityRE.FindAllStringIndex(header, -1) {
		if cut < 0 || loc[0] < cut {
			cut = loc[0]
		}
	}
	return cut
}

func collectDescription(lines []string, idx int, now time.Time) []string {
	var desc []string
	for j := idx + 1; j < len(lines) && j <= idx+descriptionLookahead; j++ {
		next := lines[j]
		if next == "" {
			if len(desc) > 0 {
				break
			}
			continue
		}
		if _, dated := parseLineDate(next, now); dated {
			break
		}
		if isStopHeading(next) {
			break
		}
		desc = append(desc, next)
	}
	return desc
}

func isStopHeading(line string) bool {
	return parsing.IsEducationHeading(line) ||
		parsing.IsBoundaryHeading(line) ||
		parsing.ContainsAny(strings.ToLower(line), extraStopHeadings)
}

// categorize classifies an entry from its surrounding text, then lets the
// title and organization override that guess.
func categorize(combined string, title, org *string) types.ExperienceCategory {
	category := types.CategoryOther
	switch {
	case parsing.ContainsAny(combined, teachingKeywords):
		category = types.CategoryTeaching
	case parsing.ContainsAny(combined, industryKeywords):
		category = types.CategoryIndustry
	}

	titleOrg := strings.ToLower(deref(title) + " " + deref(org))
	switch {
	case parsing.ContainsAny(titleOrg, strongIndustryKeywords):
		category = types.CategoryIndustry
	case parsing.ContainsAny(titleOrg, strongTeachingKeywords):
		category = types.CategoryTeaching
	}
	return category
}

// parseRoleOrgLocation splits a header into role, organization and location.
// A recognizable organization name anchors the split; otherwise the header is
// read as "role - organization, location".
func parseRoleOrgLocation(header string) (role, org, location *string) {
	hdr := strings.Trim(spaceRunRE.ReplaceAllString(header, " "), headerCutset)
	if hdr == "" {
		return nil, nil, nil
	}

	var roleText, orgText, locText string
	if matches := orgEntityRE.FindAllStringIndex(hdr, -1); len(matches) > 0 {
		last := matches[len(matches)-1]
		orgText = strings.Trim(hdr[last[0]:last[1]], headerCutset)
		roleText = strings.Trim(hdr[:last[0]], headerCutset)
		locText = strings.Trim(hdr[last[1]:], headerCutset)
	} else {
		rest := hdr
		if parts := roleSplitRE.Split(hdr, 2); len(parts) == 2 {
			roleText = strings.TrimSpace(parts[0])
			rest = strings.TrimSpace(parts[1])
		}

		var segments []string
		for _, seg := range strings.Split(rest, ",") {
			if seg = strings.TrimSpace(seg); seg != "" {
				segments = append(segments, seg)
			}
		}
		switch {
		case len(segments) >= 2:
			orgText = strings.Join(segments[:len(segments)-1], ", ")
			locText = segments[len(segments)-1]
		case len(segments) == 1:
			orgText = segments[0]
		}
	}

	if loc := adminRE.FindStringIndex(orgText); loc != nil {
		prefix := strings.Trim(orgText[:loc[1]], headerCutset)
		orgText = strings.Trim(orgText[loc[1]:], headerCutset)
		if prefix != "" {
			roleText = strings.TrimSpace(roleText + " " + prefix)
		}
	}

	if strings.HasPrefix(strings.ToLower(locText), "of ") {
		if first, rest, ok := strings.Cut(locText, ","); ok {
			orgText = strings.TrimSpace(orgText + " " + first)
			locText = strings.TrimSpace(rest)
		}
	}
	locText = strings.TrimLeft(locText, headerCutset)

	return nonEmpty(roleText), nonEmpty(orgText), nonEmpty(locText)
}

// FromCurrentOrganization builds the single ongoing record reported when no
// dated history was found but a current organization was. Dates and duration
// are unknown.
func FromCurrentOrganization(org string, role *string) types.ExperienceRecord {
	category := types.CategoryIndustry
	if parsing.ContainsAny(strings.ToLower(org), teachingOrgKeywords) {
		category = types.CategoryTeaching
	}
	return types.ExperienceRecord{
		Title:        role,
		Organization: strPtr(org),
		Category:     category,
		Ongoing:      true,
		StartDate:    strPtr(missingCell),
		EndDate:      strPtr("Present"),
		RawText:      org,
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intPtr(v int) *int {
	return &v
}

func strPtr(s string) *string {
	return &s
}
