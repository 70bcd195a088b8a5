package experience

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdown_ByContext(t *testing.T) {
	text := "Lecturer, ABC College\n2010 - 2012\n" +
		strings.Repeat("=", 130) +
		"\nAnalyst, Acme Corp\nMar 2015 - Feb 2016"

	years := Breakdown(text, testNow)

	require.NotNil(t, years.Teaching)
	assert.InDelta(t, 2.9, *years.Teaching, 1e-9)
	require.NotNil(t, years.Industry)
	assert.InDelta(t, 0.9, *years.Industry, 1e-9)
	assert.Nil(t, years.Other)
	require.NotNil(t, years.Total)
	assert.InDelta(t, 3.8, *years.Total, 1e-9)
}

func TestBreakdown_CountsEveryFamily(t *testing.T) {
	// The month range and the bare year range inside it both count
	years := Breakdown("Software Engineer, XYZ Technologies, Jan 2020 - Present", testNow)

	require.NotNil(t, years.Industry)
	assert.InDelta(t, 10.8, *years.Industry, 1e-9)
	assert.Nil(t, years.Teaching)
}

func TestBreakdown_OtherWithoutJobKeyword(t *testing.T) {
	years := Breakdown("Volunteer, City Library\nJan 2019 - Jan 2020", testNow)

	require.NotNil(t, years.Other)
	assert.InDelta(t, 1.0, *years.Other, 1e-9)
	assert.Empty(t, ExtractHistory("Volunteer, City Library\nJan 2019 - Jan 2020", testNow))
}

func TestBreakdown_ContextCountsCharacters(t *testing.T) {
	text := "Lecturer " + strings.Repeat("•", 60) + " Jan 2015 - Jan 2018"

	years := Breakdown(text, testNow)

	require.NotNil(t, years.Teaching)
	assert.InDelta(t, 3.0, *years.Teaching, 1e-9)
	assert.Nil(t, years.Other)
}

func TestBreakdown_NoRanges(t *testing.T) {
	assert.Equal(t, types.ExperienceYears{}, Breakdown("Hobbies: chess", testNow))
	assert.Equal(t, types.ExperienceYears{}, Breakdown("Engineer, Mar 2020 - Jan 2020", testNow))
}
