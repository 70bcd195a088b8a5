package experience

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const missingCell = "-"

// BuildRows flattens work history into display rows
func BuildRows(history []types.ExperienceRecord) []types.ExperienceRow {
	rows := make([]types.ExperienceRow, 0, len(history))
	for _, rec := range history {
		row := types.ExperienceRow{
			Organization:   cell(rec.Organization),
			JoiningDate:    cell(rec.StartDate),
			RelievingDate:  cell(rec.EndDate),
			ExperienceType: string(rec.Category),
		}
		if rec.Ongoing {
			row.RelievingDate = "Present"
		}
		if rec.DurationMonths != nil {
			years := math.Round(float64(*rec.DurationMonths)/12*10) / 10
			row.DurationYears = &years
		}
		rows = append(rows, row)
	}
	return rows
}

func cell(s *string) string {
	if s == nil || *s == "" {
		return missingCell
	}
	return *s
}
