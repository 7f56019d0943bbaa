//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

package reranker

// PoolFunc reduces a passage's per-chunk scores to one passage score.
// It is never called with an empty slice.
type PoolFunc func(scores []float64) float64

// MaxPool scores a passage by its single most relevant chunk. This is the
// default: a long passage is as relevant as its best part, which keeps
// passages exceeding the scorer's input window comparable to short ones.
func MaxPool(scores []float64) float64 {
	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}
	return best
}

// MeanPool scores a passage by the mean of its chunk scores.
func MeanPool(scores []float64) float64 {
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
