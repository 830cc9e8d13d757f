package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/clangrender-mcp/pkg/types"
)

// BatchBuilder renders many candidates concurrently under one option set.
// Output order always matches input order.
type BatchBuilder struct {
	builder *Builder
	workers int
}

// NewBatch creates a BatchBuilder. workers <= 0 selects one worker per CPU.
func NewBatch(opts Options, workers int) *BatchBuilder {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchBuilder{
		builder: New(opts),
		workers: workers,
	}
}

// BuildAll reduces every candidate and returns the records in input order.
// Individual candidates never fail (see Builder.Build); the only error
// source is context cancellation.
func (bb *BatchBuilder) BuildAll(ctx context.Context, cands []types.Candidate) ([]types.CompletionRecord, error) {
	records := make([]types.CompletionRecord, len(cands))

	g, gctx := errgroup.WithContext(ctx)
	semaphore := make(chan struct{}, bb.workers)

	for i := range cands {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case semaphore <- struct{}{}:
				// Acquire semaphore
			}
			records[i] = bb.builder.Build(cands[i])
			<-semaphore // Release semaphore
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// Dedupe filters a list of records, keeping the first of each equivalence
// class and preserving order. Equivalence is category + main text + return
// type; records differing only in insert text or documentation collapse.
func Dedupe(records []types.CompletionRecord) []types.CompletionRecord {
	type recordKey struct {
		category   types.Category
		mainText   string
		returnType string
	}

	var keep []types.CompletionRecord
	seen := make(map[recordKey]bool)
	for _, rec := range records {
		k := recordKey{rec.Category, rec.MainText, rec.ReturnType}
		if seen[k] {
			continue
		}
		seen[k] = true
		keep = append(keep, rec)
	}
	return keep
}
