package education

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Summarize reduces degree records to the headline education fields. When no
// record was built the whole text is scanned for degree mentions instead.
// Department is left for the caller to infer.
func Summarize(records []types.DegreeRecord, fullText string) types.EducationSummary {
	var mentioned []types.DegreeType
	for _, rec := range records {
		mentioned = append(mentioned, rec.DegreeType)
	}
	if len(mentioned) == 0 {
		mentioned = DetectDegrees(fullText)
	}

	detected := SortByPriority(mentioned)
	summary := types.EducationSummary{
		HighestDegree:   HighestDegree(detected),
		DegreesDetected: detected,
		Degrees:         records,
		FieldsOfStudy:   FieldsOfStudy(records),
	}
	if summary.Degrees == nil {
		summary.Degrees = []types.DegreeRecord{}
	}

	for _, d := range detected {
		if d == types.DegreePhD {
			summary.HasPhD = true
			break
		}
	}

	for _, rec := range records {
		if rec.DegreeType == types.DegreePhD {
			summary.PhDStartYear = rec.StartYear
			summary.PhDEndYear = rec.EndYear
			break
		}
	}

	return summary
}

// FieldsOfStudy returns the distinct fields in record order, compared case-insensitively
func FieldsOfStudy(records []types.DegreeRecord) []string {
	seen := make(map[string]bool)
	fields := make([]string, 0)
	for _, rec := range records {
		if rec.FieldOfStudy == nil || *rec.FieldOfStudy == "" {
			continue
		}
		key := strings.ToLower(*rec.FieldOfStudy)
		if seen[key] {
			continue
		}
		seen[key] = true
		fields = append(fields, *rec.FieldOfStudy)
	}
	return fields
}
