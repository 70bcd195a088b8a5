package pipeline

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/pipeline/steps"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// previewLines is how many canonical lines go into the raw preview
const previewLines = 40

// BuildEnvelope analyzes already-extracted text and wraps the result with the
// section split, the canonical text and a short preview. ID is left for the store to assign.
func BuildEnvelope(fileName, rawText string, opts Options) types.AnalysisEnvelope {
	result := Analyze(rawText, opts)

	norm := ingestion.Normalize(rawText)
	sections := parsing.ExtractSections(norm.Lines)
	opts.emit(steps.Sections)

	preview := norm.Lines
	if len(preview) > previewLines {
		preview = preview[:previewLines]
	}

	return types.AnalysisEnvelope{
		FileName:    fileName,
		CreatedAt:   opts.now().UTC(),
		ContentHash: ingestion.ContentHash(norm.Text),
		Sections:    sections,
		Skills:      result.Skills,
		RawText:     norm.Text,
		RawPreview:  strings.Join(preview, "\n"),
		Advanced:    result,
	}
}

// AnalyzeDocument extracts the text of an uploaded file and analyzes it
func AnalyzeDocument(doc Document, opts Options) (types.AnalysisEnvelope, error) {
	text, err := ingestion.ExtractText(doc.FileName, doc.Data)
	if err != nil {
		return types.AnalysisEnvelope{}, err
	}
	return BuildEnvelope(doc.FileName, text, opts), nil
}
