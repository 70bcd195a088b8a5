package experience

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// contextRadius is how many characters around a date range decide its category
const contextRadius = 120

// Breakdown totals the months covered by every date range in text, per
// category, and reports them in years. Unlike ExtractHistory no job keyword
// or header is required, so every month, numeric and year range counts, and
// a range matched by more than one family counts once per family. Categories
// come from the text around each range.
func Breakdown(text string, now time.Time) types.ExperienceYears {
	var teaching, industry, other int

	add := func(span dateSpan) {
		months := span.months(now)
		if months <= 0 {
			return
		}
		ctx := strings.ToLower(parsing.Window(text, span.start, span.end, contextRadius))
		switch {
		case parsing.ContainsAny(ctx, teachingKeywords):
			teaching += months
		case parsing.ContainsAny(ctx, industryKeywords):
			industry += months
		default:
			other += months
		}
	}

	for _, loc := range monthRangeRE.FindAllStringSubmatchIndex(text, -1) {
		if span, ok := monthSpan(text, loc); ok {
			add(span)
		}
	}
	for _, loc := range numericRangeRE.FindAllStringSubmatchIndex(text, -1) {
		if span, ok := numericSpan(text, loc, now); ok {
			add(span)
		}
	}
	for _, r := range parsing.FindYearRanges(text) {
		add(yearSpan(r))
	}

	return types.ExperienceYears{
		Teaching: monthsToYears(teaching),
		Industry: monthsToYears(industry),
		Other:    monthsToYears(other),
		Total:    monthsToYears(teaching + industry + other),
	}
}

// monthsToYears rounds to one decimal place; nil means no experience
func monthsToYears(months int) *float64 {
	if months <= 0 {
		return nil
	}
	years := math.Round(float64(months)/12*10) / 10
	return &years
}
