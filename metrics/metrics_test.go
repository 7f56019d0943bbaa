//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrecisionRecallAtK(t *testing.T) {
	relevant := []string{"a", "b"}
	retrieved := []string{"a", "c", "b"}

	require.InDelta(t, 2.0/3.0, PrecisionAtK(relevant, retrieved, 3), 1e-9)
	require.InDelta(t, 1.0, RecallAtK(relevant, retrieved, 3), 1e-9)

	require.InDelta(t, 1.0, PrecisionAtK(relevant, retrieved, 1), 1e-9)
	require.InDelta(t, 0.5, RecallAtK(relevant, retrieved, 1), 1e-9)

	// Cutoff beyond the retrieved list uses all entries without padding.
	require.InDelta(t, 0.2, PrecisionAtK(relevant, retrieved[:1], 5), 1e-9)
}

func TestMetrics_NonPositiveK(t *testing.T) {
	relevant := []string{"a"}
	retrieved := []string{"a"}

	for _, k := range []int{0, -1, -10} {
		require.Zero(t, PrecisionAtK(relevant, retrieved, k))
		require.Zero(t, RecallAtK(relevant, retrieved, k))
		require.Zero(t, DCGAtK(relevant, retrieved, k))
		require.Zero(t, NDCGAtK(relevant, retrieved, k))
	}
}

func TestMetrics_EmptyRelevant(t *testing.T) {
	retrieved := []string{"a", "b"}

	require.Zero(t, RecallAtK(nil, retrieved, 3))
	require.Zero(t, NDCGAtK(nil, retrieved, 3))
	require.Zero(t, AveragePrecision(nil, retrieved))
	require.Zero(t, ReciprocalRank(nil, retrieved))
}

func TestDCGAndNDCG(t *testing.T) {
	relevant := []string{"a", "b"}
	retrieved := []string{"a", "c", "b"}

	// Hits at positions 1 and 3: 1/log2(2) + 1/log2(4) = 1 + 0.5.
	require.InDelta(t, 1.5, DCGAtK(relevant, retrieved, 3), 1e-9)

	// Ideal ranking ["a","b"]: 1/log2(2) + 1/log2(3) ≈ 1.6309.
	require.InDelta(t, 1.6309, DCGAtK(relevant, relevant, 3), 1e-4)
	require.InDelta(t, 0.9197, NDCGAtK(relevant, retrieved, 3), 1e-4)
}

func TestNDCG_PerfectRanking(t *testing.T) {
	tests := [][]string{
		{"a"},
		{"a", "b"},
		{"x", "y", "z", "w"},
	}
	for _, relevant := range tests {
		require.InDelta(t, 1.0, NDCGAtK(relevant, relevant, len(relevant)), 1e-9)
		require.InDelta(t, 1.0, NDCGAtK(relevant, relevant, len(relevant)+5), 1e-9)
	}
}

func TestAveragePrecision(t *testing.T) {
	// Hits at positions 1 (y) and 3 (x): (1/1 + 2/3) / 2 ≈ 0.8333.
	relevant := []string{"x", "y"}
	retrieved := []string{"y", "z", "x"}
	require.InDelta(t, 0.8333, AveragePrecision(relevant, retrieved), 1e-4)

	// Perfect ranking gives AP 1.
	require.InDelta(t, 1.0, AveragePrecision(relevant, []string{"x", "y"}), 1e-9)

	// No hits gives AP 0.
	require.Zero(t, AveragePrecision(relevant, []string{"z", "w"}))
}

func TestReciprocalRank(t *testing.T) {
	relevant := []string{"a"}

	require.InDelta(t, 1.0, ReciprocalRank(relevant, []string{"a", "b"}), 1e-9)
	require.InDelta(t, 0.5, ReciprocalRank(relevant, []string{"b", "a"}), 1e-9)
	require.InDelta(t, 1.0/3.0, ReciprocalRank(relevant, []string{"b", "c", "a"}), 1e-9)
	require.Zero(t, ReciprocalRank(relevant, []string{"b", "c"}))
	require.Zero(t, ReciprocalRank(relevant, nil))
}
