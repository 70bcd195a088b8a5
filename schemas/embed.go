// Package schemas holds the JSON Schemas of the analyzer's output documents.
package schemas

import "embed"

// Schema file names
const (
	AnalysisResult = "analysis_result.schema.json"
	Envelope       = "envelope.schema.json"
)

// FS contains every *.schema.json file in this directory
//
//go:embed *.schema.json
var FS embed.FS
