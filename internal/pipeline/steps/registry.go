// Package steps provides step definitions and dependency validation for the
// résumé analysis pipeline.
package steps

import (
	"fmt"
	"sort"
)

// Step names
const (
	Normalize    = "normalize"
	Sections     = "sections"
	Skills       = "skills"
	Education    = "education"
	Department   = "department"
	Experience   = "experience"
	Contact      = "contact"
	Publications = "publications"
	Score        = "score"
)

// Step categories
const (
	CategoryIngestion  = "ingestion"
	CategoryExtraction = "extraction"
	CategoryScoring    = "scoring"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	Normalize: {
		Name:         Normalize,
		Category:     CategoryIngestion,
		Dependencies: []string{},
	},
	Sections: {
		Name:         Sections,
		Category:     CategoryIngestion,
		Dependencies: []string{Normalize},
	},
	Skills: {
		Name:         Skills,
		Category:     CategoryExtraction,
		Dependencies: []string{Normalize},
	},
	Education: {
		Name:         Education,
		Category:     CategoryExtraction,
		Dependencies: []string{Normalize},
	},
	Department: {
		Name:         Department,
		Category:     CategoryExtraction,
		Dependencies: []string{Education},
	},
	Experience: {
		Name:         Experience,
		Category:     CategoryExtraction,
		Dependencies: []string{Normalize},
	},
	Contact: {
		Name:         Contact,
		Category:     CategoryExtraction,
		Dependencies: []string{Experience},
	},
	Publications: {
		Name:         Publications,
		Category:     CategoryExtraction,
		Dependencies: []string{Normalize},
	},
	Score: {
		Name:         Score,
		Category:     CategoryScoring,
		Dependencies: []string{Education, Department},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks that every required dependency of a step is in completed
func ValidateDependencies(stepName string, completed map[string]bool) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}
	return nil
}

// GetAvailableSteps returns the steps not yet completed whose dependencies are met, sorted by name
func GetAvailableSteps(completed map[string]bool) []string {
	var available []string
	for stepName := range StepRegistry {
		if completed[stepName] {
			continue
		}
		if err := ValidateDependencies(stepName, completed); err != nil {
			continue
		}
		available = append(available, stepName)
	}
	sort.Strings(available)
	return available
}
