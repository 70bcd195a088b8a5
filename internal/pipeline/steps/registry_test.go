package steps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepRegistry(t *testing.T) {
	expectedSteps := []string{
		Normalize, Sections, Skills, Education, Department,
		Experience, Contact, Publications, Score,
	}

	require.Len(t, StepRegistry, len(expectedSteps))
	for _, stepName := range expectedSteps {
		def, ok := StepRegistry[stepName]
		require.True(t, ok, "Step %s should be in registry", stepName)
		assert.Equal(t, stepName, def.Name)
		assert.NotEmpty(t, def.Category)
		for _, dep := range def.Dependencies {
			_, known := StepRegistry[dep]
			assert.True(t, known, "Step %s depends on unknown step %s", stepName, dep)
		}
	}
}

func TestStepRegistryCategories(t *testing.T) {
	categories := map[string][]string{
		CategoryIngestion:  {Normalize, Sections},
		CategoryExtraction: {Skills, Education, Department, Experience, Contact, Publications},
		CategoryScoring:    {Score},
	}

	for category, stepNames := range categories {
		for _, stepName := range stepNames {
			def, ok := StepRegistry[stepName]
			require.True(t, ok)
			assert.Equal(t, category, def.Category, "Step %s should be in category %s", stepName, category)
		}
	}
}

func TestDependencyError(t *testing.T) {
	err := &DependencyError{
		Step:                "test_step",
		MissingDependencies: []string{"dep1", "dep2"},
	}

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing dependencies")
	assert.Equal(t, "test_step", err.Step)
	assert.Equal(t, []string{"dep1", "dep2"}, err.MissingDependencies)
}

func TestValidateDependencies(t *testing.T) {
	err := ValidateDependencies(Score, map[string]bool{Normalize: true, Education: true})

	var depErr *DependencyError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, Score, depErr.Step)
	assert.Equal(t, []string{Department}, depErr.MissingDependencies)

	assert.NoError(t, ValidateDependencies(Score, map[string]bool{Education: true, Department: true}))
	assert.NoError(t, ValidateDependencies(Normalize, nil))
}

func TestValidateDependencies_UnknownStep(t *testing.T) {
	err := ValidateDependencies("unknown_step", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step")
}

func TestGetAvailableSteps(t *testing.T) {
	assert.Equal(t, []string{Normalize}, GetAvailableSteps(nil))

	available := GetAvailableSteps(map[string]bool{Normalize: true})
	assert.Equal(t, []string{Education, Experience, Publications, Sections, Skills}, available)

	available = GetAvailableSteps(map[string]bool{Normalize: true, Education: true, Experience: true})
	assert.Contains(t, available, Department)
	assert.Contains(t, available, Contact)
	assert.NotContains(t, available, Score)
}
