package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	blankRunRE  = regexp.MustCompile(`\n{2,}`)
	spaceRunRE  = regexp.MustCompile(`[ \t]+`)
	bulletGlyph = []string{"•", "◦", "●", "○", "■", "▪", "►", "\uf0fc", "-", "*"}
)

// CleanText normalizes extracted résumé text: carriage returns become newlines,
// runs of spaces and tabs collapse to one space, every line is trimmed and
// blank lines are dropped. Applying it twice yields the same result.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Collapse blank runs and horizontal whitespace
	content = blankRunRE.ReplaceAllString(content, "\n\n")
	content = spaceRunRE.ReplaceAllString(content, " ")
	content = strings.TrimSpace(content)

	// 3. Trim each line and drop the empty ones
	return strings.Join(SplitLines(content), "\n")
}

// SplitLines splits text into trimmed, non-empty lines
func SplitLines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Normalize cleans raw text and returns it together with its lines
func Normalize(raw string) types.NormalizedText {
	text := CleanText(raw)
	return types.NormalizedText{
		Text:  text,
		Lines: SplitLines(text),
	}
}

// IsBulletLine reports whether a line starts with a list glyph
func IsBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, glyph := range bulletGlyph {
		if strings.HasPrefix(trimmed, glyph) {
			return true
		}
	}
	return false
}

// IngestFromFile reads a résumé file of any supported format and returns its
// cleaned text with metadata
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	raw, err := ExtractText(filepath.Base(path), content)
	if err != nil {
		return "", nil, err
	}

	cleanedText := CleanText(raw)
	metadata := NewMetadata(cleanedText, filepath.Base(path), FormatOf(path))

	return cleanedText, metadata, nil
}

// WriteOutput writes the cleaned text and metadata next to each other in outDir
func WriteOutput(outDir string, baseName string, cleanedText string, metadata *Metadata) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cleanedPath := filepath.Join(outDir, baseName+".cleaned.txt")
	if err := os.WriteFile(cleanedPath, []byte(cleanedText), 0644); err != nil {
		return fmt.Errorf("failed to write cleaned text file: %w", err)
	}

	metaPath := filepath.Join(outDir, baseName+".meta.json")
	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
