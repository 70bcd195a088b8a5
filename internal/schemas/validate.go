// Package schemas provides JSON Schema validation of analysis documents.
package schemas

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	schemafiles "github.com/jonathan/resume-analyzer/schemas"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateAnalysis marshals an AnalysisResult and validates it against the embedded result schema
func ValidateAnalysis(result any) error {
	return validateValue(schemafiles.AnalysisResult, result)
}

// ValidateEnvelope marshals an AnalysisEnvelope and validates it and its result
func ValidateEnvelope(envelope any) error {
	if err := validateValue(schemafiles.Envelope, envelope); err != nil {
		return err
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}
	var doc struct {
		Advanced json.RawMessage `json:"advanced"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to read envelope result: %w", err)
	}
	return validateLoaders(schemafiles.AnalysisResult, gojsonschema.NewBytesLoader(doc.Advanced))
}

// ValidateJSONFile validates a JSON file against one of the embedded schemas
func ValidateJSONFile(schemaName, jsonPath string) error {
	jsonAbsPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}
	if _, err := os.Stat(jsonAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", jsonAbsPath)
	}

	return validateLoaders(schemaName, gojsonschema.NewReferenceLoader("file://"+filepath.ToSlash(jsonAbsPath)))
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return toValidationError(result)
}

func validateValue(schemaName string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	return validateLoaders(schemaName, gojsonschema.NewBytesLoader(data))
}

func validateLoaders(schemaName string, document gojsonschema.JSONLoader) error {
	schemaData, err := schemafiles.FS.ReadFile(schemaName)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema not embedded",
			Cause:   err,
		}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaData), document)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return toValidationError(result)
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
