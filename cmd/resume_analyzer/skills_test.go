package main

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsOf_DefaultCatalog(t *testing.T) {
	path := writeTempFile(t, "jane.txt", sectionedResume)

	matched, err := skillsOf(path, skills.DefaultCatalog())

	require.NoError(t, err)
	assert.Contains(t, matched["programming_languages"], "Python")
	assert.Contains(t, matched[types.AllSkillsKey], "Python")
}

func TestDescribeCatalog(t *testing.T) {
	catalog, err := skills.NewCatalog(map[string][]string{
		"languages": {"go", "java"},
		"cloud":     {"aws"},
	})
	require.NoError(t, err)

	out := describeCatalog(catalog)

	assert.Contains(t, out, "languages (2 keywords)\n")
	assert.Contains(t, out, "cloud (1 keywords)\n")
	assert.Contains(t, out, "3 keywords in total\n")
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := loadCatalog("")
	require.NoError(t, err)
	assert.Same(t, skills.DefaultCatalog(), catalog)

	path := writeTempFile(t, "catalog.yaml", "languages:\n  - rust\n")
	catalog, err = loadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"languages"}, catalog.Categories())

	_, err = loadCatalog(writeTempFile(t, "bad.yaml", "languages: [unterminated"))
	assert.Error(t, err)
}
