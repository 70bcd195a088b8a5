// Package pipeline provides the high-level orchestration of résumé analysis.
package pipeline

import (
	"time"

	"github.com/jonathan/resume-analyzer/internal/education"
	"github.com/jonathan/resume-analyzer/internal/experience"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/pipeline/steps"
	"github.com/jonathan/resume-analyzer/internal/ranking"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ProgressEvent represents a progress update during analysis
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
}

// ProgressCallback is called after each analysis step completes
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for an analysis
type Options struct {
	// Catalog is the skill catalog; nil means the embedded default
	Catalog *skills.Catalog
	// TargetDepartment adds the department component to the score when set
	TargetDepartment string
	// Now supplies the date used for ongoing experience; defaults to time.Now
	Now func() time.Time
	// OnProgress is called after each step; AnalyzeBatch may call it from several goroutines
	OnProgress ProgressCallback
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) emit(step string) {
	if o.OnProgress != nil {
		o.OnProgress(ProgressEvent{
			Step:     step,
			Category: steps.StepRegistry[step].Category,
		})
	}
}

// Analyze runs every extractor over the résumé text and assembles the result.
// The clock is read once, so a fixed Options.Now makes the output deterministic.
func Analyze(text string, opts Options) types.AnalysisResult {
	now := opts.now()

	norm := ingestion.Normalize(text)
	clean := norm.Text
	opts.emit(steps.Normalize)

	var result types.AnalysisResult

	result.Skills = skills.ExtractSkills(clean, opts.Catalog)
	opts.emit(steps.Skills)

	records := education.ExtractDegrees(education.ExtractSection(clean), clean, now)
	result.Education = education.Summarize(records, clean)
	opts.emit(steps.Education)

	result.Education.Department = ranking.InferDepartment(result.Education.FieldsOfStudy, clean)
	opts.emit(steps.Department)

	history := experience.ExtractHistory(clean, now)
	result.Experience = types.ExperienceSummary{
		Years:   experience.Breakdown(clean, now),
		History: history,
		Rows:    experience.BuildRows(history),
	}
	opts.emit(steps.Experience)

	result.ContactInfo = parsing.ExtractContact(clean, history)
	if len(history) == 0 && result.ContactInfo.CurrentOrganization != nil {
		history = []types.ExperienceRecord{
			experience.FromCurrentOrganization(*result.ContactInfo.CurrentOrganization, result.ContactInfo.CurrentRole),
		}
		result.Experience.History = history
		result.Experience.Rows = experience.BuildRows(history)
	}
	opts.emit(steps.Contact)

	result.Publications = parsing.CountPublications(clean)
	opts.emit(steps.Publications)

	result.Score = ranking.Score(
		result.Education.HasPhD,
		result.Education.HighestDegree,
		result.Education.Department,
		opts.TargetDepartment,
	)
	opts.emit(steps.Score)

	return result
}
