package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/types"
	schemafiles "github.com/jonathan/resume-analyzer/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time {
	return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
}

const sampleResume = "Jane Smith\n" +
	"jane.smith@example.com | +91 98765 43210\n" +
	"EDUCATION\n" +
	"Ph.D. in Physics, XYZ University, 2015-2020\n" +
	"WORK EXPERIENCE\n" +
	"Assistant Professor, ABC College, Pune\n" +
	"June 2020 - Present\n" +
	"PUBLICATIONS\n" +
	"1. Journal paper on optics"

func TestValidateAnalysis_PipelineOutput(t *testing.T) {
	for _, text := range []string{sampleResume, "", "Hobbies: chess", "WORK EXPERIENCE\nCurrently working at ABC College"} {
		result := pipeline.Analyze(text, pipeline.Options{Now: fixedNow, TargetDepartment: "Physics"})
		assert.NoError(t, ValidateAnalysis(result), "text %q", text)
	}
}

func TestValidateAnalysis_RejectsBrokenResult(t *testing.T) {
	result := pipeline.Analyze(sampleResume, pipeline.Options{Now: fixedNow})
	result.Score = 5
	result.Education.HighestDegree = "Doctorate"
	zero := 0
	result.Experience.History[0].DurationMonths = &zero

	err := ValidateAnalysis(result)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.GreaterOrEqual(t, len(validationErr.Errors), 3)

	fields := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "score")
	assert.Contains(t, fields, "education.highest_degree")
}

func TestValidateEnvelope(t *testing.T) {
	env := pipeline.BuildEnvelope("cv.txt", sampleResume, pipeline.Options{Now: fixedNow})
	env.ID = uuid.New()

	assert.NoError(t, ValidateEnvelope(env))

	env.ContentHash = "not-a-hash"
	assert.Error(t, ValidateEnvelope(env))
}

func TestValidateEnvelope_ChecksNestedResult(t *testing.T) {
	env := pipeline.BuildEnvelope("cv.txt", sampleResume, pipeline.Options{Now: fixedNow})
	env.ID = uuid.New()
	env.Advanced.Score = 1000

	err := ValidateEnvelope(env)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateJSONFile(t *testing.T) {
	result := pipeline.Analyze(sampleResume, pipeline.Options{Now: fixedNow})
	data, err := jsonMarshal(result)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	assert.NoError(t, ValidateJSONFile(schemafiles.AnalysisResult, path))
}

func TestValidateJSONFile_NotFound(t *testing.T) {
	err := ValidateJSONFile(schemafiles.AnalysisResult, "testdata/nonexistent.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONFile_UnknownSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	err := ValidateJSONFile("missing.schema.json", path)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "missing.schema.json", loadErr.Path)
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["score"], "properties": {"score": {"type": "integer"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"score": 35}`))

	err := ValidateJSONString(schema, `{"score": "high"}`)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "score", validationErr.Errors[0].Field)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{not json`, `{}`)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "(string schema)")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "score", Message: "Must be greater than or equal to 10"},
			{Field: "(root)", Message: "skills is required"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. score: Must be greater than or equal to 10")
	assert.Contains(t, msg, "2. (root): skills is required")
}

func TestValidateAnalysis_ZeroValue(t *testing.T) {
	// The zero value has null collections and an empty degree type
	assert.Error(t, ValidateAnalysis(types.AnalysisResult{}))
}

func jsonMarshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
