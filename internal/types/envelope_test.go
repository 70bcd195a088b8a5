//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeTextRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request AnalyzeTextRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid request",
			request: AnalyzeTextRequest{Text: "Jane Smith\nEDUCATION\nPh.D. in Physics"},
		},
		{
			name: "valid request with target department",
			request: AnalyzeTextRequest{
				Text:             "Jane Smith",
				FileName:         "jane.txt",
				TargetDepartment: "Physics",
			},
		},
		{
			name:    "missing text",
			request: AnalyzeTextRequest{TargetDepartment: "Physics"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "target department too long",
			request: AnalyzeTextRequest{
				Text:             "Jane Smith",
				TargetDepartment: strings.Repeat("x", 121),
			},
			wantErr: true,
			errMsg:  "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAnalysisResult_FlattensContactInfo(t *testing.T) {
	name := "Jane Smith"
	result := AnalysisResult{
		ContactInfo: ContactInfo{Name: &name},
		Skills:      SkillSet{AllSkillsKey: {}},
		Education:   EducationSummary{HighestDegree: DegreeUnknown},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Jane Smith", decoded["name"])
	assert.Contains(t, decoded, "email")
	assert.Nil(t, decoded["email"], "missing fields serialize as null")
	assert.Contains(t, decoded, "education")
	assert.NotContains(t, decoded, "ContactInfo")
}

func TestExperienceYears_NullWhenUnset(t *testing.T) {
	years := 2.5
	data, err := json.Marshal(ExperienceYears{Industry: &years})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"teaching_experience_years": null,
		"industry_experience_years": 2.5,
		"other_experience_years": null,
		"total_experience_years": null
	}`, string(data))
}

func TestExperienceRecord_JSONKeys(t *testing.T) {
	data, err := json.Marshal(ExperienceRecord{Category: CategoryTeaching, Ongoing: true})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, true, decoded["ongoing"])
	assert.NotContains(t, decoded, "is_current")
	assert.Contains(t, decoded, "end_date_str")
	assert.Contains(t, decoded, "duration_months")
}
