package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with \t\t multiple    spaces"
	result := CleanText(input)

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_DropsBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2\n   \nLine 3"
	result := CleanText(input)

	assert.Equal(t, "Line 1\nLine 2\nLine 3", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.NotContains(t, result, "\r")
	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_TrimsEachLine(t *testing.T) {
	input := "   Jane Smith   \n\t EDUCATION \n  Ph.D. in Physics  "
	result := CleanText(input)

	assert.Equal(t, "Jane Smith\nEDUCATION\nPh.D. in Physics", result)
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"Test content   with   spaces\n\n\nMultiple   blank   lines",
		"  A\r\n\r\nB  \t C\n\n",
		"Jane Smith\nEDUCATION\nPh.D. in Physics, 2015-2020",
		"",
		"   \n  \n  ",
	}

	for _, input := range inputs {
		once := CleanText(input)
		assert.Equal(t, once, CleanText(once), "input %q", input)
	}
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Test with émojis 🚀 and spéciàl chàracters"
	result := CleanText(input)

	assert.Contains(t, result, "émojis")
	assert.Contains(t, result, "🚀")
	assert.Contains(t, result, "spéciàl chàracters")
}

func TestNormalize_Lines(t *testing.T) {
	normalized := Normalize("Jane Smith\n\n  jane@example.com \nEDUCATION")

	assert.Equal(t, "Jane Smith\njane@example.com\nEDUCATION", normalized.Text)
	assert.Equal(t, []string{"Jane Smith", "jane@example.com", "EDUCATION"}, normalized.Lines)
}

func TestIsBulletLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"• Taught physics", true},
		{"- Built services", true},
		{"* Item", true},
		{"▪ Item", true},
		{" Item", true},
		{"  ► Indented", true},
		{"Assistant Professor", false},
		{"1. Paper", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBulletLine(tt.line))
		})
	}
}

func TestIngestFromFile_Success(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "resume.txt")
	err := os.WriteFile(testFile, []byte("Jane Smith\n\n\nEDUCATION\n  Ph.D. in Physics"), 0644)
	require.NoError(t, err)

	cleanedText, metadata, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith\nEDUCATION\nPh.D. in Physics", cleanedText)
	require.NotNil(t, metadata)
	assert.Len(t, metadata.Hash, 64)
	assert.Equal(t, "resume.txt", metadata.FileName)
	assert.Equal(t, FormatText, metadata.Format)
	assert.Equal(t, 3, metadata.LineCount)
	assert.NotEmpty(t, metadata.Timestamp)
}

func TestIngestFromFile_FileNotFound(t *testing.T) {
	cleanedText, metadata, err := IngestFromFile("/nonexistent/file.txt")

	assert.Error(t, err)
	assert.Empty(t, cleanedText)
	assert.Nil(t, metadata)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_UnsupportedFormat(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "resume.rtf")
	require.NoError(t, os.WriteFile(testFile, []byte("{\\rtf1 Jane}"), 0644))

	_, _, err := IngestFromFile(testFile)

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "rtf", unsupported.Extension)
}

func TestIngestFromFile_HashUniqueness(t *testing.T) {
	tmpDir := t.TempDir()

	testFile1 := filepath.Join(tmpDir, "test1.txt")
	testFile2 := filepath.Join(tmpDir, "test2.txt")
	require.NoError(t, os.WriteFile(testFile1, []byte("Content 1"), 0644))
	require.NoError(t, os.WriteFile(testFile2, []byte("Content 2"), 0644))

	_, metadata1, err := IngestFromFile(testFile1)
	require.NoError(t, err)
	_, metadata2, err := IngestFromFile(testFile2)
	require.NoError(t, err)

	assert.NotEqual(t, metadata1.Hash, metadata2.Hash)
}

func TestWriteOutput_CreatesFiles(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")
	metadata := NewMetadata("Jane Smith", "jane.txt", FormatText)

	err := WriteOutput(outDir, "jane", "Jane Smith", metadata)
	require.NoError(t, err)

	cleaned, err := os.ReadFile(filepath.Join(outDir, "jane.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", string(cleaned))

	_, err = os.Stat(filepath.Join(outDir, "jane.meta.json"))
	assert.NoError(t, err)
}
