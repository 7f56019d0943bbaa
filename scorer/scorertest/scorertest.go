//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

// Package scorertest provides deterministic scorers for tests.
package scorertest

import (
	"context"
	"fmt"
	"sync"
)

// Fixed scores each text by looking it up in a fixed score table.
// Unknown texts score zero. Safe for concurrent use.
type Fixed struct {
	mu     sync.Mutex
	scores map[string]float64
	calls  int
}

// NewFixed creates a scorer that returns the given score per text.
func NewFixed(scores map[string]float64) *Fixed {
	return &Fixed{scores: scores}
}

// ScoreBatch implements the scorer.Scorer interface.
func (f *Fixed) ScoreBatch(_ context.Context, _ string, texts []string) ([]float64, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	scores := make([]float64, len(texts))
	for i, text := range texts {
		scores[i] = f.scores[text]
	}
	return scores, nil
}

// Calls reports how many times ScoreBatch was invoked.
func (f *Fixed) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Failing always fails with the configured message.
type Failing struct {
	// Message is the error message to return.
	Message string
}

// ScoreBatch implements the scorer.Scorer interface.
func (f *Failing) ScoreBatch(context.Context, string, []string) ([]float64, error) {
	msg := f.Message
	if msg == "" {
		msg = "scorer unavailable"
	}
	return nil, fmt.Errorf("%s", msg)
}
