package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultConcurrency bounds AnalyzeBatch when no limit is given
const DefaultConcurrency = 4

// Document is one résumé file to analyze
type Document struct {
	FileName string
	Data     []byte
}

// AnalyzeBatch analyzes documents concurrently, at most concurrency at a time.
// Results keep the input order. The first extraction failure cancels the
// remaining work and is returned.
func AnalyzeBatch(ctx context.Context, docs []Document, opts Options, concurrency int) ([]types.AnalysisEnvelope, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]types.AnalysisEnvelope, len(docs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, doc := range docs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			env, err := AnalyzeDocument(doc, opts)
			if err != nil {
				return fmt.Errorf("failed to analyze %s: %w", doc.FileName, err)
			}
			results[i] = env
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
