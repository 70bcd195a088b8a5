package main

import (
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsOf(t *testing.T) {
	path := writeTempFile(t, "jane.txt", sectionedResume)

	sections, err := sectionsOf(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\njane@example.com", sections[parsing.GeneralSection])
	assert.Equal(t, "Ph.D. in Physics, 2015-2020", sections["EDUCATION"])
	assert.Equal(t, "Python, MATLAB", sections["SKILLS & INTERESTS"])
}

func TestSectionsOf_Errors(t *testing.T) {
	_, err := sectionsOf(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")

	_, err = sectionsOf(writeTempFile(t, "resume.odt", "text"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to extract text")
}
