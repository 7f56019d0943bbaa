//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

// Package metrics computes information-retrieval quality metrics.
//
// All functions take a ground-truth identifier set (as a slice, order
// ignored) and an ordered retrieved identifier list. Retrieved lists are
// expected to be free of duplicates; callers collapse duplicates to the
// first occurrence beforehand (see passage.DedupeIDs).
package metrics

import "math"

// DefaultKs are the rank cutoffs metrics are computed at by default.
var DefaultKs = []int{1, 3, 5}

// relevantSet builds a membership set from the ground-truth slice.
func relevantSet(relevant []string) map[string]struct{} {
	set := make(map[string]struct{}, len(relevant))
	for _, id := range relevant {
		set[id] = struct{}{}
	}
	return set
}

// hitsAtK counts retrieved[:k] entries present in the relevant set.
func hitsAtK(relevant, retrieved []string, k int) int {
	set := relevantSet(relevant)
	if k > len(retrieved) {
		k = len(retrieved)
	}
	hits := 0
	for _, id := range retrieved[:k] {
		if _, ok := set[id]; ok {
			hits++
		}
	}
	return hits
}

// PrecisionAtK returns |relevant ∩ retrieved[:k]| / k, or 0 when k <= 0.
func PrecisionAtK(relevant, retrieved []string, k int) float64 {
	if k <= 0 {
		return 0
	}
	return float64(hitsAtK(relevant, retrieved, k)) / float64(k)
}

// RecallAtK returns |relevant ∩ retrieved[:k]| / |relevant|, or 0 when the
// relevant set is empty or k <= 0.
func RecallAtK(relevant, retrieved []string, k int) float64 {
	if k <= 0 || len(relevant) == 0 {
		return 0
	}
	return float64(hitsAtK(relevant, retrieved, k)) / float64(len(relevant))
}

// DCGAtK returns the discounted cumulative gain of retrieved[:k] with binary
// relevance: each hit at 0-based position i contributes 1/log2(i+2).
func DCGAtK(relevant, retrieved []string, k int) float64 {
	if k <= 0 {
		return 0
	}
	set := relevantSet(relevant)
	if k > len(retrieved) {
		k = len(retrieved)
	}
	dcg := 0.0
	for i, id := range retrieved[:k] {
		if _, ok := set[id]; ok {
			dcg += 1 / math.Log2(float64(i)+2)
		}
	}
	return dcg
}

// NDCGAtK returns DCG@k normalized by the ideal DCG, where the ideal ranking
// is the relevant set ranked first. Returns 0 when the ideal DCG is 0.
func NDCGAtK(relevant, retrieved []string, k int) float64 {
	ideal := DCGAtK(relevant, relevant, k)
	if ideal == 0 {
		return 0
	}
	return DCGAtK(relevant, retrieved, k) / ideal
}

// AveragePrecision returns the average of precision values at every rank
// where a relevant item occurs, divided by |relevant|. Returns 0 when the
// relevant set is empty.
func AveragePrecision(relevant, retrieved []string) float64 {
	if len(relevant) == 0 {
		return 0
	}
	set := relevantSet(relevant)
	hits := 0
	sum := 0.0
	for i, id := range retrieved {
		if _, ok := set[id]; ok {
			hits++
			sum += float64(hits) / float64(i+1)
		}
	}
	return sum / float64(len(relevant))
}

// ReciprocalRank returns 1/(1-indexed rank of the first relevant item), or 0
// when no retrieved item is relevant.
func ReciprocalRank(relevant, retrieved []string) float64 {
	set := relevantSet(relevant)
	for i, id := range retrieved {
		if _, ok := set[id]; ok {
			return 1 / float64(i+1)
		}
	}
	return 0
}
