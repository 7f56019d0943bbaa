//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

// Package scorer defines the batch relevance-scoring boundary used by rerankers.
package scorer

import "context"

// Scorer scores a batch of texts against a single query.
// Implementations may be local models, remote services, or test stubs.
type Scorer interface {
	// ScoreBatch returns one relevance score per text, in input order.
	// Higher means more relevant. Scores are not guaranteed to be bounded
	// or to be probabilities; callers must only compare them.
	ScoreBatch(ctx context.Context, query string, texts []string) ([]float64, error)
}

// Func adapts a plain function to the Scorer interface.
type Func func(ctx context.Context, query string, texts []string) ([]float64, error)

// ScoreBatch implements the Scorer interface.
func (f Func) ScoreBatch(ctx context.Context, query string, texts []string) ([]float64, error) {
	return f(ctx, query, texts)
}
