package server

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalysisStore persists analysis envelopes. *db.DB implements it.
// Get returns nil without error when the ID is unknown.
type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, env *types.AnalysisEnvelope) (uuid.UUID, error)
	GetAnalysis(ctx context.Context, id uuid.UUID) (*types.AnalysisEnvelope, error)
	ListAnalyses(ctx context.Context, filters db.AnalysisFilters) ([]types.AnalysisSummary, error)
	DeleteAnalysis(ctx context.Context, id uuid.UUID) error
	Close()
}

var _ AnalysisStore = (*db.DB)(nil)

// MemoryStore keeps analyses in process memory. It is used when no database is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	analyses map[uuid.UUID]types.AnalysisEnvelope
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{analyses: make(map[uuid.UUID]types.AnalysisEnvelope)}
}

// SaveAnalysis stores a copy of env, assigning an ID when it has none
func (m *MemoryStore) SaveAnalysis(_ context.Context, env *types.AnalysisEnvelope) (uuid.UUID, error) {
	if env.ID == uuid.Nil {
		env.ID = uuid.New()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses[env.ID] = *env
	return env.ID, nil
}

// GetAnalysis returns the stored envelope or nil
func (m *MemoryStore) GetAnalysis(_ context.Context, id uuid.UUID) (*types.AnalysisEnvelope, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	env, ok := m.analyses[id]
	if !ok {
		return nil, nil
	}
	return &env, nil
}

// ListAnalyses returns summaries newest first, applying the same filters as the database
func (m *MemoryStore) ListAnalyses(_ context.Context, filters db.AnalysisFilters) ([]types.AnalysisSummary, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = db.DefaultListLimit
	}

	m.mu.RLock()
	summaries := make([]types.AnalysisSummary, 0, len(m.analyses))
	for _, env := range m.analyses {
		if filters.Department != "" && !strings.EqualFold(env.Advanced.Education.Department, filters.Department) {
			continue
		}
		if env.Advanced.Score < filters.MinScore {
			continue
		}
		summaries = append(summaries, summarize(env))
	}
	m.mu.RUnlock()

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
		}
		return summaries[i].ID.String() < summaries[j].ID.String()
	})
	if len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// DeleteAnalysis removes an analysis
func (m *MemoryStore) DeleteAnalysis(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.analyses[id]; !ok {
		return &ErrAnalysisNotFound{ID: id}
	}
	delete(m.analyses, id)
	return nil
}

// Close is a no-op
func (m *MemoryStore) Close() {}

func summarize(env types.AnalysisEnvelope) types.AnalysisSummary {
	return types.AnalysisSummary{
		ID:            env.ID,
		FileName:      env.FileName,
		Name:          env.Advanced.Name,
		HighestDegree: env.Advanced.Education.HighestDegree,
		Department:    env.Advanced.Education.Department,
		Score:         env.Advanced.Score,
		CreatedAt:     env.CreatedAt,
	}
}
