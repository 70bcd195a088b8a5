package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEnvelope(t *testing.T) {
	raw := "  John Doe  \r\n\r\nSKILLS\nPython, SQL\n\nEDUCATION\nB.Tech Computer Science, ABC University, 2015-2019\n"

	env := BuildEnvelope("john.txt", raw, Options{Now: fixedNow})

	assert.Equal(t, "john.txt", env.FileName)
	assert.Equal(t, fixedNow(), env.CreatedAt)
	assert.Equal(t, "John Doe\nSKILLS\nPython, SQL\nEDUCATION\nB.Tech Computer Science, ABC University, 2015-2019", env.RawText)
	assert.Equal(t, env.RawText, env.RawPreview)
	assert.Equal(t, ingestion.ContentHash(env.RawText), env.ContentHash)
	assert.Equal(t, "Python, SQL", env.Sections["SKILLS"])
	assert.Equal(t, "John Doe", env.Sections["GENERAL"])
	assert.Equal(t, env.Advanced.Skills, env.Skills)
	assert.Contains(t, env.Skills["all_skills"], "Python")
	assert.Equal(t, "John Doe", *env.Advanced.Name)
}

func TestBuildEnvelope_PreviewIsCapped(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 60; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}

	env := BuildEnvelope("long.txt", b.String(), Options{Now: fixedNow})

	preview := strings.Split(env.RawPreview, "\n")
	require.Len(t, preview, previewLines)
	assert.Equal(t, "line 40", preview[len(preview)-1])
	assert.Len(t, strings.Split(env.RawText, "\n"), 60)
}

func TestAnalyzeDocument_UnsupportedFormat(t *testing.T) {
	_, err := AnalyzeDocument(Document{FileName: "cv.odt", Data: []byte("x")}, Options{Now: fixedNow})

	var unsupported *ingestion.UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))
}

func TestAnalyzeBatch(t *testing.T) {
	docs := []Document{
		{FileName: "a.txt", Data: []byte(sampleResume)},
		{FileName: "b.txt", Data: []byte("Jane Roe\nSoftware Engineer, XYZ Technologies, Jan 2020 - Present")},
		{FileName: "c.html", Data: []byte("<html><body><p>Sam Lee</p><p>MBA, Finance</p></body></html>")},
	}

	results, err := AnalyzeBatch(context.Background(), docs, Options{Now: fixedNow}, 2)

	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, doc := range docs {
		assert.Equal(t, doc.FileName, results[i].FileName)
	}
	assert.Equal(t, "John Doe", *results[0].Advanced.Name)
	assert.Len(t, results[1].Advanced.Experience.History, 1)
	assert.Equal(t, "Master", string(results[2].Advanced.Education.HighestDegree))
}

func TestAnalyzeBatch_FailsOnBadDocument(t *testing.T) {
	docs := []Document{
		{FileName: "a.txt", Data: []byte(sampleResume)},
		{FileName: "b.exe", Data: []byte{0x4d, 0x5a}},
	}

	results, err := AnalyzeBatch(context.Background(), docs, Options{Now: fixedNow}, 0)

	require.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "b.exe")
}

func TestAnalyzeBatch_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AnalyzeBatch(ctx, []Document{{FileName: "a.txt", Data: []byte(sampleResume)}}, Options{Now: fixedNow}, 1)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeBatch_Empty(t *testing.T) {
	results, err := AnalyzeBatch(context.Background(), nil, Options{Now: fixedNow}, 1)

	require.NoError(t, err)
	assert.Empty(t, results)
}
