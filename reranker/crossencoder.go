//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

package reranker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"trpc.group/trpc-go/trpc-rankeval-go/chunker"
	"trpc.group/trpc-go/trpc-rankeval-go/passage"
	"trpc.group/trpc-go/trpc-rankeval-go/scorer"
)

// ErrNoScorer indicates that the reranker was built without a scorer.
var ErrNoScorer = errors.New("reranker requires a scorer")

// EmptyPolicy decides what happens to passages whose text yields no chunks.
type EmptyPolicy int

const (
	// DropEmpty removes zero-chunk passages from the reranked output.
	// Note this shrinks the output relative to the input.
	DropEmpty EmptyPolicy = iota

	// KeepWithSentinel keeps zero-chunk passages, scored -Inf so they sort
	// after every scored passage.
	KeepWithSentinel
)

// CrossEncoder reranks passages with a pairwise relevance scorer.
//
// Each passage is split into bounded chunks, all (query, chunk) pairs are
// scored in one batch call, and per-passage chunk scores are pooled into the
// passage score. The batch call is deliberate: one scorer invocation per
// rerank, never one per chunk.
type CrossEncoder struct {
	scorer   scorer.Scorer
	chunking chunker.Strategy
	pool     PoolFunc
	empty    EmptyPolicy
}

// Option represents a functional option for configuring CrossEncoder.
type Option func(*CrossEncoder)

// WithChunking sets the chunking strategy applied to passage text.
func WithChunking(strategy chunker.Strategy) Option {
	return func(ce *CrossEncoder) {
		ce.chunking = strategy
	}
}

// WithPool sets the chunk-score pooling policy.
func WithPool(pool PoolFunc) Option {
	return func(ce *CrossEncoder) {
		ce.pool = pool
	}
}

// WithEmptyPolicy sets the zero-chunk passage policy.
func WithEmptyPolicy(policy EmptyPolicy) Option {
	return func(ce *CrossEncoder) {
		ce.empty = policy
	}
}

// NewCrossEncoder creates a cross-encoder reranker with options.
// Defaults: word chunking at 512 characters, max pooling, dropped
// zero-chunk passages.
func NewCrossEncoder(s scorer.Scorer, opts ...Option) *CrossEncoder {
	ce := &CrossEncoder{
		scorer:   s,
		chunking: chunker.NewWordChunking(),
		pool:     MaxPool,
		empty:    DropEmpty,
	}
	// Apply options.
	for _, opt := range opts {
		opt(ce)
	}
	return ce
}

// chunkRef associates one scored chunk back to its passage.
// The batch keeps an explicit ordered association instead of a keyed map so
// grouping follows insertion order.
type chunkRef struct {
	passageIndex int
	chunkIndex   int
	text         string
}

// Rerank implements the Reranker interface.
//
// Passages are returned sorted by descending pooled score; ties keep the
// original input order. Each ranked passage's Score field is set to its
// pooled value. A scorer failure is fatal to the whole call.
func (ce *CrossEncoder) Rerank(ctx context.Context, query string, passages []*passage.Passage) ([]*passage.Passage, error) {
	if ce.scorer == nil {
		return nil, ErrNoScorer
	}

	// Chunk every passage, building the flat scoring batch.
	var refs []chunkRef
	chunkCounts := make([]int, len(passages))
	for i, p := range passages {
		chunks, err := ce.chunking.Chunk(p.Text)
		if err != nil {
			return nil, fmt.Errorf("chunk passage %q: %w", p.FileName, err)
		}
		chunkCounts[i] = len(chunks)
		for j, chunk := range chunks {
			refs = append(refs, chunkRef{passageIndex: i, chunkIndex: j, text: chunk})
		}
	}

	var scores []float64
	if len(refs) > 0 {
		texts := make([]string, len(refs))
		for i, ref := range refs {
			texts[i] = ref.text
		}
		var err error
		scores, err = ce.scorer.ScoreBatch(ctx, query, texts)
		if err != nil {
			return nil, fmt.Errorf("score batch of %d chunks: %w", len(texts), err)
		}
		if len(scores) != len(texts) {
			return nil, fmt.Errorf("scorer returned %d scores for %d chunks", len(scores), len(texts))
		}
	}

	// Pool chunk scores per passage.
	chunkScores := make([][]float64, len(passages))
	for i, ref := range refs {
		chunkScores[ref.passageIndex] = append(chunkScores[ref.passageIndex], scores[i])
	}

	ranked := make([]*passage.Passage, 0, len(passages))
	for i, p := range passages {
		if chunkCounts[i] == 0 {
			if ce.empty == DropEmpty {
				continue
			}
			p.Score = math.Inf(-1)
		} else {
			p.Score = ce.pool(chunkScores[i])
		}
		ranked = append(ranked, p)
	}

	// Stable sort keeps input order on ties.
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})
	return ranked, nil
}
