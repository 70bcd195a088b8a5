// Package server provides the HTTP REST API for the résumé analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
)

// ErrAnalysisNotFound indicates no stored analysis has the requested ID
type ErrAnalysisNotFound struct {
	ID uuid.UUID
}

func (e *ErrAnalysisNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// ErrPayloadTooLarge indicates an upload over the configured size cap
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("upload exceeds %d bytes", e.Limit)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound    *ErrAnalysisNotFound
		tooLarge    *ErrPayloadTooLarge
		validation  *ErrValidation
		unsupported *ingestion.UnsupportedFormatError
		extraction  *ingestion.ExtractionError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
