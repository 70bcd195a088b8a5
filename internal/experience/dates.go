package experience

import (
	"regexp"
	"strconv"
	"time"

	"github.com/jonathan/resume-analyzer/internal/parsing"
)

var (
	monthRangeRE = regexp.MustCompile(`(?i)(?:(?:From|Since)\s+)?` +
		`(?P<from_day>\d{1,2}(?:st|nd|rd|th)?\s+)?` +
		`(?P<from_month>` + parsing.MonthPattern + `)\s+(?P<from_year>\d{4})\s*` +
		`(?:[-–]|to)\s*` +
		`(?:(?P<to_day>\d{1,2}(?:st|nd|rd|th)?\s+)?` +
		`(?P<to_month>` + parsing.MonthPattern + `)\s+(?P<to_year>\d{4})|` +
		`(?P<to_label>Present|Currently Working|Current|Till Date|Now))`)

	numericRangeRE = regexp.MustCompile(`(?i)(?P<from_d>\d{1,2})[./-]\s*(?P<from_m>\d{1,2})[./-]\s*(?:[A-Za-z]{0,2})?(?P<from_y>\d{2,4})\s*` +
		`(?:to|[-–])\s*` +
		`(?:(?P<to_d>\d{1,2})[./-]\s*(?P<to_m>\d{1,2})[./-]\s*(?:[A-Za-z]{0,2})?(?P<to_y>\d{2,4})|` +
		`(?P<to_label>Present|Currently Working|Current|Till Date|Till today|Today|Now))`)
)

// dateSpan is a dated interval found in text. toYear and toMonth are zero when ongoing.
type dateSpan struct {
	fromYear  int
	fromMonth int
	toYear    int
	toMonth   int
	ongoing   bool
	text      string
	start     int
	end       int
}

// months returns the span length, measuring ongoing spans against now
func (d dateSpan) months(now time.Time) int {
	toYear, toMonth := d.toYear, d.toMonth
	if d.ongoing {
		toYear, toMonth = now.Year(), int(now.Month())
	}
	return (toYear-d.fromYear)*12 + (toMonth - d.fromMonth)
}

// parseLineDate tries the month-name, numeric and bare-year families in that
// order. The first family that matches decides; an invalid month in it means
// the line has no usable date.
func parseLineDate(line string, now time.Time) (dateSpan, bool) {
	if loc := monthRangeRE.FindStringSubmatchIndex(line); loc != nil {
		return monthSpan(line, loc)
	}
	if loc := numericRangeRE.FindStringSubmatchIndex(line); loc != nil {
		return numericSpan(line, loc, now)
	}
	if r, ok := parsing.FindYearRange(line); ok {
		return yearSpan(r), true
	}
	return dateSpan{}, false
}

func monthSpan(text string, loc []int) (dateSpan, bool) {
	span := dateSpan{
		fromMonth: parsing.MonthNumber(group(monthRangeRE, text, loc, "from_month")),
		fromYear:  atoi(group(monthRangeRE, text, loc, "from_year")),
		text:      text[loc[0]:loc[1]],
		start:     loc[0],
		end:       loc[1],
	}
	if span.fromMonth == 0 {
		return dateSpan{}, false
	}

	if toMonth := group(monthRangeRE, text, loc, "to_month"); toMonth != "" {
		span.toMonth = parsing.MonthNumber(toMonth)
		span.toYear = atoi(group(monthRangeRE, text, loc, "to_year"))
		if span.toMonth == 0 {
			span.toMonth = 12
		}
	} else {
		span.ongoing = true
	}
	return span, true
}

func numericSpan(text string, loc []int, now time.Time) (dateSpan, bool) {
	span := dateSpan{
		fromMonth: atoi(group(numericRangeRE, text, loc, "from_m")),
		fromYear:  parsing.NormalizeYear(group(numericRangeRE, text, loc, "from_y"), now),
		text:      text[loc[0]:loc[1]],
		start:     loc[0],
		end:       loc[1],
	}
	if !validMonth(span.fromMonth) {
		return dateSpan{}, false
	}

	if group(numericRangeRE, text, loc, "to_label") != "" {
		span.ongoing = true
		return span, true
	}

	span.toMonth = atoi(group(numericRangeRE, text, loc, "to_m"))
	span.toYear = parsing.NormalizeYear(group(numericRangeRE, text, loc, "to_y"), now)
	if !validMonth(span.toMonth) {
		return dateSpan{}, false
	}
	return span, true
}

// yearSpan covers January of the start year through December of the end year
func yearSpan(r parsing.YearRange) dateSpan {
	span := dateSpan{
		fromYear:  r.Start,
		fromMonth: 1,
		text:      r.Text,
		start:     r.Pos[0],
		end:       r.Pos[1],
	}
	if r.End == nil {
		span.ongoing = true
	} else {
		span.toYear = *r.End
		span.toMonth = 12
	}
	return span
}

func group(re *regexp.Regexp, text string, loc []int, name string) string {
	i := re.SubexpIndex(name)
	if i < 0 || loc[2*i] < 0 {
		return ""
	}
	return text[loc[2*i]:loc[2*i+1]]
}

func validMonth(m int) bool {
	return m >= 1 && m <= 12
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
