//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-rankeval-go/dataset"
	"trpc.group/trpc-go/trpc-rankeval-go/log"
	"trpc.group/trpc-go/trpc-rankeval-go/metrics"
	"trpc.group/trpc-go/trpc-rankeval-go/passage"
	"trpc.group/trpc-go/trpc-rankeval-go/reranker"
)

// Runner drives one evaluation pass: per-query reranking (when a reranker is
// configured) followed by metric computation and summarization.
type Runner struct {
	name     string
	reranker reranker.Reranker
	config   Config
}

// Option represents a functional option for configuring the Runner.
type Option func(*Runner)

// WithReranker sets the reranker applied to each query's retrieved passages.
// Without one, the run evaluates the dataset's original ranking.
func WithReranker(r reranker.Reranker) Option {
	return func(run *Runner) {
		run.reranker = r
	}
}

// WithConfig sets the run configuration.
func WithConfig(config Config) Option {
	return func(run *Runner) {
		run.config = config
	}
}

// NewRunner creates a runner for a named experiment with options.
func NewRunner(name string, opts ...Option) *Runner {
	if name == "" {
		name = "run"
	}
	r := &Runner{
		name:   name,
		config: DefaultConfig(),
	}
	// Apply options.
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the experiment name.
func (r *Runner) Name() string {
	return r.name
}

// Run evaluates the dataset rows and returns the per-query metric rows plus
// the dataset-level summary. Input rows are never mutated; each run works on
// its own copy so reruns stay independent.
func (r *Runner) Run(ctx context.Context, rows []dataset.Row) (*Run, error) {
	start := time.Now()
	log.Infof("Starting evaluation run %q over %d queries", r.name, len(rows))

	prepared := make([]dataset.Row, len(rows))
	copy(prepared, rows)

	if r.reranker != nil {
		if err := r.rerankAll(ctx, prepared); err != nil {
			return nil, fmt.Errorf("run %q: %w", r.name, err)
		}
	}

	computed := metrics.Compute(prepared, r.config.Ks)
	run := &Run{
		ID:        fmt.Sprintf("run-%s", uuid.New().String()[:8]),
		Name:      r.name,
		Timestamp: time.Now(),
		Rows:      computed,
		Summary:   Summarize(computed, r.config.Ks),
	}

	log.Infof("Evaluation run %q finished in %s", r.name, time.Since(start))
	return run, nil
}

// rerankAll reranks every row, bounded by the configured concurrency.
func (r *Runner) rerankAll(ctx context.Context, rows []dataset.Row) error {
	if r.config.Concurrency <= 1 || len(rows) <= 1 {
		for i := range rows {
			if err := r.rerankRow(ctx, &rows[i]); err != nil {
				return err
			}
		}
		return nil
	}

	pool, err := ants.NewPool(r.config.Concurrency)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	errs := make([]error, len(rows))
	for i := range rows {
		wg.Add(1)
		row := &rows[i]
		slot := i
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			errs[slot] = r.rerankRow(ctx, row)
		}); submitErr != nil {
			wg.Done()
			errs[slot] = submitErr
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// rerankRow reranks one row's passages and rewrites its retrieved identifier
// list from the new ordering. A scorer failure either aborts the run or, under
// FailureSkip, keeps the row's pre-rerank ranking.
func (r *Runner) rerankRow(ctx context.Context, row *dataset.Row) error {
	passages, err := passage.ParseList(row.RetrievedChunks)
	if err != nil {
		log.Errorf("Malformed retrieved chunks for query %q, using empty list: %v", row.Query, err)
		passages = nil
	}

	ranked, err := r.reranker.Rerank(ctx, row.Query, passages)
	if err != nil {
		if r.config.OnScorerFailure == FailureSkip {
			log.Warnf("Rerank failed for query %q, keeping original ranking: %v", row.Query, err)
			return nil
		}
		return fmt.Errorf("rerank query %q: %w", row.Query, err)
	}

	row.RetrievedDocs = strings.Join(passage.FileNames(ranked), ",")
	return nil
}
