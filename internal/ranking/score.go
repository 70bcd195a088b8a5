package ranking

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Score weights
const (
	phdPoints       = 50
	masterPoints    = 35
	bachelorPoints  = 25
	schoolPoints    = 15
	unknownPoints   = 10
	deptMatchPoints = 30
	deptOtherPoints = 10
)

// Score rates a profile by its highest qualification and, when a target
// department is given, by whether the inferred department matches it.
// A PhD anywhere in the document earns full degree points regardless of
// the highest degree recorded.
func Score(hasPhD bool, highest types.DegreeType, department, targetDepartment string) int {
	score := degreePoints(hasPhD, highest)

	if target := strings.TrimSpace(targetDepartment); target != "" {
		if strings.EqualFold(department, target) {
			score += deptMatchPoints
		} else {
			score += deptOtherPoints
		}
	}
	return score
}

func degreePoints(hasPhD bool, highest types.DegreeType) int {
	if hasPhD {
		return phdPoints
	}
	switch highest {
	case types.DegreePhD:
		return phdPoints
	case types.DegreeMaster:
		return masterPoints
	case types.DegreeBachelor:
		return bachelorPoints
	case types.DegreeDiploma, types.DegreeHighSchool:
		return schoolPoints
	default:
		return unknownPoints
	}
}
