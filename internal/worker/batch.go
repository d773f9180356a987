package worker

import (
	"context"

	"stencil/internal/model"
)

// Extractor turns one input source (file path or URL) into a template
type Extractor interface {
	ExtractSource(ctx context.Context, source string) (*model.Template, error)
}

// ExtractJob extracts a template from a single source
type ExtractJob struct {
	Source    string
	Extractor Extractor
}

// Execute runs the extraction for this source
func (j *ExtractJob) Execute(ctx context.Context) Result {
	tmpl, err := j.Extractor.ExtractSource(ctx, j.Source)
	return &ExtractResult{Source: j.Source, Template: tmpl, Error: err}
}

// ExtractResult is the outcome of one batch source
type ExtractResult struct {
	Source   string
	Template *model.Template
	Error    error
}

// GetError returns the extraction error, if any
func (r *ExtractResult) GetError() error { return r.Error }

// BatchProcessor extracts templates from many sources concurrently. Each job
// runs its own session, so no coordination beyond the pool is needed.
type BatchProcessor struct {
	extractor   Extractor
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(extractor Extractor, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &BatchProcessor{extractor: extractor, concurrency: concurrency}
}

// Process extracts every source and returns the results (completion order)
func (b *BatchProcessor) Process(ctx context.Context, sources []string) []*ExtractResult {
	if len(sources) == 0 {
		return nil
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()
	for _, src := range sources {
		pool.Submit(&ExtractJob{Source: src, Extractor: b.extractor})
	}

	raw := pool.Wait()
	results := make([]*ExtractResult, 0, len(raw))
	for _, r := range raw {
		if er, ok := r.(*ExtractResult); ok {
			results = append(results, er)
		}
	}

	// Cancelled context can leave fewer results than sources; surface the
	// cancellation for the missing ones.
	if ctx.Err() != nil && len(results) < len(sources) {
		done := make(map[string]bool, len(results))
		for _, r := range results {
			done[r.Source] = true
		}
		for _, src := range sources {
			if !done[src] {
				results = append(results, &ExtractResult{Source: src, Error: ctx.Err()})
			}
		}
	}

	return results
}
