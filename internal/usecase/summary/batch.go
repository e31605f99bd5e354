package summary

import (
	"context"

	"golang.org/x/sync/errgroup"

	"texttools/internal/domain/entity"
)

// maxBatchConcurrency bounds parallel summarizations within a single
// batch request.
const maxBatchConcurrency = 8

// MaxBatchDocuments is the largest number of documents accepted in one
// batch call.
const MaxBatchDocuments = 50

// BatchItem is the per-document outcome of a batch summarization.
// Exactly one of Result and Err is set.
type BatchItem struct {
	Result *Result
	Err    error
}

// SummarizeBatch summarizes each document independently and in parallel.
// A document that fails its guards (blank text, too few sentences) yields
// a per-item error without affecting its siblings. Results line up with
// the input slice by index.
func (s *Service) SummarizeBatch(ctx context.Context, texts []string, count int, policy Policy) ([]BatchItem, error) {
	if len(texts) == 0 {
		return nil, &entity.ValidationError{Field: "documents", Message: "at least one document is required"}
	}
	if len(texts) > MaxBatchDocuments {
		return nil, &entity.ValidationError{Field: "documents", Message: "too many documents in one batch"}
	}

	items := make([]BatchItem, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBatchConcurrency)

	for i, text := range texts {
		g.Go(func() error {
			result, err := s.Summarize(gctx, text, count, policy)
			items[i] = BatchItem{Result: result, Err: err}
			return nil
		})
	}

	// Per-document failures stay in their slot; Wait only surfaces
	// context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
