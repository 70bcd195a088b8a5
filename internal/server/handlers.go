package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// uploadField is the multipart field carrying the résumé file
const uploadField = "resume"

// defaultTextFileName names analyses submitted as plain text
const defaultTextFileName = "resume.txt"

// upload is a parsed multipart analysis request
type upload struct {
	doc              pipeline.Document
	targetDepartment string
}

// handleHealth reports server and store health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok", "store": "memory"}
	if pinger, ok := s.store.(interface{ Ping(context.Context) error }); ok {
		resp["store"] = "postgres"
		if err := pinger.Ping(r.Context()); err != nil {
			resp["status"] = "degraded"
			resp["error"] = err.Error()
			s.jsonResponse(w, http.StatusServiceUnavailable, resp)
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnalyze analyzes an uploaded résumé and stores the result
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	env, err := pipeline.AnalyzeDocument(up.doc, s.options(up.targetDepartment))
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	if err := s.save(r.Context(), &env); err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, env)
}

// handleAnalyzeText analyzes résumé text posted as JSON
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+multipartOverhead)

	var req types.AnalyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.errorFromErr(w, &ErrPayloadTooLarge{Limit: s.maxUploadBytes})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFromErr(w, validationError(err))
		return
	}

	fileName := req.FileName
	if fileName == "" {
		fileName = defaultTextFileName
	}
	env := pipeline.BuildEnvelope(fileName, req.Text, s.options(req.TargetDepartment))

	if err := s.save(r.Context(), &env); err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, env)
}

// handleAnalyzeStream analyzes an upload and streams step progress as Server-Sent Events
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	// Extraction errors map to status codes, so they surface before the stream opens
	text, err := ingestion.ExtractText(up.doc.FileName, up.doc.Data)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	opts := s.options(up.targetDepartment)
	opts.OnProgress = func(event pipeline.ProgressEvent) {
		if err := sse.WriteProgress(event); err != nil {
			log.Printf("Failed to write progress event: %v", err)
		}
	}

	env := pipeline.BuildEnvelope(up.doc.FileName, text, opts)
	if err := s.save(r.Context(), &env); err != nil {
		log.Printf("Failed to store streamed analysis: %v", err)
		sse.WriteError("failed to store analysis")
		return
	}

	if err := sse.WriteResult(&env); err != nil {
		log.Printf("Failed to write result event: %v", err)
		return
	}
	sse.WriteComplete(env.ID.String())
}

// handleGetAnalysis returns a stored envelope
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	env, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	if env == nil {
		s.errorFromErr(w, &ErrAnalysisNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, env)
}

// handleListAnalyses lists stored analyses, filtered by department and minimum score
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	filters, err := parseListFilters(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	summaries, err := s.store.ListAnalyses(r.Context(), filters)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": summaries,
		"count":    len(summaries),
	})
}

// handleDeleteAnalysis removes a stored analysis
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	env, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	if env == nil {
		s.errorFromErr(w, &ErrAnalysisNotFound{ID: id})
		return
	}

	if err := s.store.DeleteAnalysis(r.Context(), id); err != nil {
		s.errorFromErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readUpload reads the résumé file and optional target_department from a multipart form
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return upload{}, &ErrPayloadTooLarge{Limit: s.maxUploadBytes}
		}
		return upload{}, &ErrValidation{Field: uploadField, Message: "expected a multipart form: " + err.Error()}
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return upload{}, &ErrValidation{Field: uploadField, Message: "file is required"}
	}
	defer file.Close() //nolint:errcheck

	if header.Size > s.maxUploadBytes {
		return upload{}, &ErrPayloadTooLarge{Limit: s.maxUploadBytes}
	}
	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		return upload{}, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return upload{}, &ErrPayloadTooLarge{Limit: s.maxUploadBytes}
	}

	return upload{
		doc:              pipeline.Document{FileName: header.Filename, Data: data},
		targetDepartment: strings.TrimSpace(r.FormValue("target_department")),
	}, nil
}

// options returns the base pipeline options with a per-request target department
func (s *Server) options(targetDepartment string) pipeline.Options {
	opts := s.analysis
	if targetDepartment != "" {
		opts.TargetDepartment = targetDepartment
	}
	return opts
}

// save optionally validates env against the schemas and stores it, assigning its ID
func (s *Server) save(ctx context.Context, env *types.AnalysisEnvelope) error {
	if env.ID == uuid.Nil {
		env.ID = uuid.New()
	}
	if s.validateOutput {
		if err := schemas.ValidateEnvelope(env); err != nil {
			return fmt.Errorf("analysis failed schema validation: %w", err)
		}
	}
	if _, err := s.store.SaveAnalysis(ctx, env); err != nil {
		return fmt.Errorf("failed to store analysis: %w", err)
	}
	return nil
}

func parseListFilters(r *http.Request) (db.AnalysisFilters, error) {
	query := r.URL.Query()
	filters := db.AnalysisFilters{Department: strings.TrimSpace(query.Get("department"))}

	for _, param := range []struct {
		name string
		dst  *int
	}{
		{"min_score", &filters.MinScore},
		{"limit", &filters.Limit},
	} {
		raw := query.Get(param.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return db.AnalysisFilters{}, &ErrValidation{Field: param.name, Message: "must be a non-negative integer"}
		}
		*param.dst = n
	}
	return filters, nil
}

// validationError converts validator output into an ErrValidation for the first failing field
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ErrValidation{Field: fe.Field(), Message: "failed on " + fe.Tag()}
	}
	return &ErrValidation{Field: "body", Message: err.Error()}
}
