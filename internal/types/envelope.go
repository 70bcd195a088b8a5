package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnalysisEnvelope wraps an AnalysisResult with the document-level artifacts
// returned by the CLI and the HTTP API.
type AnalysisEnvelope struct {
	ID          uuid.UUID      `json:"id"`
	FileName    string         `json:"file_name"`
	CreatedAt   time.Time      `json:"created_at"`
	ContentHash string         `json:"content_hash"`
	Sections    Sections       `json:"sections"`
	Skills      SkillSet       `json:"skills"`
	RawText     string         `json:"raw_text"`
	RawPreview  string         `json:"raw_preview"`
	Advanced    AnalysisResult `json:"advanced"`
}

// AnalysisSummary is the list view of a stored analysis
type AnalysisSummary struct {
	ID            uuid.UUID  `json:"id"`
	FileName      string     `json:"file_name"`
	Name          *string    `json:"name"`
	HighestDegree DegreeType `json:"highest_degree"`
	Department    string     `json:"department"`
	Score         int        `json:"score"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AnalyzeTextRequest is the JSON body of POST /analyze/text
type AnalyzeTextRequest struct {
	Text             string `json:"text" validate:"required"`
	FileName         string `json:"file_name,omitempty" validate:"omitempty,max=255"`
	TargetDepartment string `json:"target_department,omitempty" validate:"omitempty,max=120"`
}

// Validate validates the AnalyzeTextRequest using the validator.
func (r *AnalyzeTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
