package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MonthPattern matches an English month name or its three-letter abbreviation
const MonthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|` +
	`Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

var monthAbbrevs = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var yearRangeRE = regexp.MustCompile(`(?i)(?P<start>(?:19|20)\d{2})\s*(?:[-–/]|to)\s*` +
	`(?P<end>(?:19|20)\d{2}|present|current|ongoing|till date|now)`)

// YearRange is a span such as "2015 - 2019" or "2018 to present"
type YearRange struct {
	Start int
	End   *int // nil when the range is open-ended
	Text  string
	Pos   [2]int
}

// FindYearRange returns the first year range in text
func FindYearRange(text string) (YearRange, bool) {
	loc := yearRangeRE.FindStringSubmatchIndex(text)
	if loc == nil {
		return YearRange{}, false
	}
	return newYearRange(text, loc), true
}

// FindYearRanges returns every non-overlapping year range in text
func FindYearRanges(text string) []YearRange {
	locs := yearRangeRE.FindAllStringSubmatchIndex(text, -1)
	ranges := make([]YearRange, 0, len(locs))
	for _, loc := range locs {
		ranges = append(ranges, newYearRange(text, loc))
	}
	return ranges
}

func newYearRange(text string, loc []int) YearRange {
	start, _ := strconv.Atoi(text[loc[2]:loc[3]])
	r := YearRange{
		Start: start,
		Text:  text[loc[0]:loc[1]],
		Pos:   [2]int{loc[0], loc[1]},
	}
	if end, err := strconv.Atoi(text[loc[4]:loc[5]]); err == nil {
		r.End = &end
	}
	return r
}

// MonthNumber maps a month name to 1..12 using its first three letters, or 0 when unknown
func MonthNumber(name string) int {
	if len(name) < 3 {
		return 0
	}
	prefix := strings.ToLower(name[:3])
	for i, abbrev := range monthAbbrevs {
		if strings.ToLower(abbrev) == prefix {
			return i + 1
		}
	}
	return 0
}

// MonthAbbrev returns the three-letter name of month 1..12
func MonthAbbrev(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthAbbrevs[month-1]
}

// FormatMonthYear renders "Jan 2020"
func FormatMonthYear(year, month int) string {
	return MonthAbbrev(month) + " " + strconv.Itoa(year)
}

// NormalizeYear expands a year string. Four digits are kept. Two digits pivot on
// the current two-digit year: not after it means 20yy, after it means 19yy.
func NormalizeYear(digits string, now time.Time) int {
	y, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	if len(digits) == 4 {
		return y
	}
	if y <= now.Year()%100 {
		return 2000 + y
	}
	return 1900 + y
}
