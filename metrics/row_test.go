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

	"trpc.group/trpc-go/trpc-rankeval-go/dataset"
)

func TestCompute(t *testing.T) {
	rows := []dataset.Row{
		{
			Query:         "first query",
			RelevantDocs:  `["a", "b"]`,
			RetrievedDocs: "a,c,b",
		},
		{
			Query:         "second query",
			RelevantDocs:  `["x"]`,
			RetrievedDocs: "y,z",
		},
	}

	computed := Compute(rows, []int{1, 3})
	require.Len(t, computed, 2)

	first := computed[0]
	require.Equal(t, []string{"a", "b"}, first.RelevantIDs)
	require.Equal(t, []string{"a", "c", "b"}, first.RetrievedIDs)
	require.InDelta(t, 1.0, first.PrecisionAt[1], 1e-9)
	require.InDelta(t, 2.0/3.0, first.PrecisionAt[3], 1e-9)
	require.InDelta(t, 1.0, first.RecallAt[3], 1e-9)
	require.InDelta(t, 0.9197, first.NDCGAt[3], 1e-4)

	second := computed[1]
	require.Zero(t, second.PrecisionAt[1])
	require.Zero(t, second.RecallAt[3])
	require.Zero(t, second.NDCGAt[3])
}

func TestCompute_DefaultKs(t *testing.T) {
	computed := Compute([]dataset.Row{
		{Query: "q", RelevantDocs: `["a"]`, RetrievedDocs: "a"},
	}, nil)

	require.Len(t, computed, 1)
	for _, k := range DefaultKs {
		require.Contains(t, computed[0].PrecisionAt, k)
		require.Contains(t, computed[0].RecallAt, k)
		require.Contains(t, computed[0].NDCGAt, k)
	}
}

func TestCompute_MalformedLists(t *testing.T) {
	// A malformed serialized list degrades to empty instead of aborting.
	computed := Compute([]dataset.Row{
		{
			Query:         "broken ground truth",
			RelevantDocs:  `["a", "b"`,
			RetrievedDocs: "a,b",
		},
	}, []int{3})

	require.Len(t, computed, 1)
	require.Empty(t, computed[0].RelevantIDs)
	require.Zero(t, computed[0].RecallAt[3])
	require.Zero(t, computed[0].PrecisionAt[3])
}

func TestCompute_DuplicateRetrieved(t *testing.T) {
	// Duplicates collapse to the first occurrence before metrics run.
	computed := Compute([]dataset.Row{
		{
			Query:         "dupes",
			RelevantDocs:  `["a"]`,
			RetrievedDocs: "a,a,b",
		},
	}, []int{2})

	require.Equal(t, []string{"a", "b"}, computed[0].RetrievedIDs)
	require.InDelta(t, 0.5, computed[0].PrecisionAt[2], 1e-9)
}
