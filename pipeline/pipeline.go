// Package pipeline runs palindrome extraction over many documents concurrently.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"kaibun/analyze"
	"kaibun/ingest"
	"kaibun/model"
)

// Tokenizer turns text into analyzed tokens.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]model.Token, error)
}

// Pipeline tokenizes and analyzes documents with a bounded number of workers.
// Each document owns its token slice, so workers share nothing.
type Pipeline struct {
	tokenizer Tokenizer
	analyzer  *analyze.Analyzer
	workers   int
	logger    *slog.Logger
}

// New creates a Pipeline. workers below one means one.
func New(tk Tokenizer, an *analyze.Analyzer, workers int, logger *slog.Logger) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{tokenizer: tk, analyzer: an, workers: workers, logger: logger}
}

// Run analyzes docs and returns one Analysis per document, in input order.
// The first failure cancels the remaining work.
func (p *Pipeline) Run(ctx context.Context, docs []ingest.Document) ([]analyze.Analysis, error) {
	results := make([]analyze.Analysis, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			a, err := p.process(ctx, doc)
			if err != nil {
				return fmt.Errorf("document %s: %w", doc.ID, err)
			}
			results[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Pipeline) process(ctx context.Context, doc ingest.Document) (analyze.Analysis, error) {
	tokens, err := p.tokenizer.Tokenize(ctx, doc.Text)
	if err != nil {
		return analyze.Analysis{}, fmt.Errorf("tokenize: %w", err)
	}
	a, err := p.analyzer.Analyze(ctx, doc, tokens)
	if err != nil {
		return analyze.Analysis{}, err
	}
	p.logger.Info("document analyzed",
		"document_id", doc.ID,
		"tokens", a.TokenCount,
		"palindromes", len(a.Palindromes))
	return a, nil
}
