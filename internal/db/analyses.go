package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// SaveAnalysis stores an envelope and assigns its ID and creation time.
// An envelope that already has an ID keeps it.
func (db *DB) SaveAnalysis(ctx context.Context, env *types.AnalysisEnvelope) (uuid.UUID, error) {
	if env.ID == uuid.Nil {
		env.ID = uuid.New()
	}

	jsonBytes, err := json.Marshal(env)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (id, file_name, content_hash, candidate_name, highest_degree, department, score, envelope, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at`,
		env.ID, env.FileName, env.ContentHash, env.Advanced.Name,
		string(env.Advanced.Education.HighestDegree), env.Advanced.Education.Department,
		env.Advanced.Score, jsonBytes, env.CreatedAt,
	).Scan(&env.CreatedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis %s: %w", env.FileName, err)
	}
	return env.ID, nil
}

// GetAnalysis retrieves a stored envelope by ID. It returns nil when no row matches.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.AnalysisEnvelope, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT envelope FROM analyses WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var env types.AnalysisEnvelope
	if err := json.Unmarshal(content, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &env, nil
}

// FindByContentHash returns the newest analysis of identical text, or nil
func (db *DB) FindByContentHash(ctx context.Context, hash string) (*types.AnalysisEnvelope, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT id FROM analyses WHERE content_hash = $1 ORDER BY created_at DESC LIMIT 1`,
		hash,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find analysis by hash: %w", err)
	}
	return db.GetAnalysis(ctx, id)
}

// ListAnalyses retrieves analysis summaries, newest first
func (db *DB) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]types.AnalysisSummary, error) {
	query, args := buildListQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	summaries := make([]types.AnalysisSummary, 0)
	for rows.Next() {
		var s types.AnalysisSummary
		var degree string
		if err := rows.Scan(&s.ID, &s.FileName, &s.Name, &degree, &s.Department, &s.Score, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		s.HighestDegree = types.DegreeType(degree)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return summaries, nil
}

// DeleteAnalysis removes a stored analysis
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}
	return nil
}

func buildListQuery(filters AnalysisFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultListLimit
	}

	var sb strings.Builder
	sb.WriteString(`SELECT id, file_name, candidate_name, highest_degree, department, score, created_at
		FROM analyses WHERE 1=1`)
	args := []any{}
	argNum := 1

	if filters.Department != "" {
		sb.WriteString(fmt.Sprintf(" AND department ILIKE $%d", argNum))
		args = append(args, filters.Department)
		argNum++
	}
	if filters.MinScore > 0 {
		sb.WriteString(fmt.Sprintf(" AND score >= $%d", argNum))
		args = append(args, filters.MinScore)
		argNum++
	}

	sb.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum))
	args = append(args, filters.Limit)
	return sb.String(), args
}
