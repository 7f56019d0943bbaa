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
	"testing"

	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-rankeval-go/dataset"
	"trpc.group/trpc-go/trpc-rankeval-go/reranker"
	"trpc.group/trpc-go/trpc-rankeval-go/scorer/scorertest"
)

func testRows() []dataset.Row {
	return []dataset.Row{
		{
			Query:        "first query",
			RelevantDocs: `["good.md"]`,
			RetrievedChunks: `[{"chunk": "bad text", "relative_path": "bad.md"},
				{"chunk": "good text", "relative_path": "good.md"}]`,
			RetrievedDocs: "bad.md,good.md",
		},
		{
			Query:        "second query",
			RelevantDocs: `["right.md"]`,
			RetrievedChunks: `[{"chunk": "wrong text", "relative_path": "wrong.md"},
				{"chunk": "right text", "relative_path": "right.md"}]`,
			RetrievedDocs: "wrong.md,right.md",
		},
	}
}

func testScorer() *scorertest.Fixed {
	return scorertest.NewFixed(map[string]float64{
		"bad text":   0.1,
		"good text":  0.9,
		"wrong text": 0.2,
		"right text": 0.8,
	})
}

func TestRunner_OriginalRanking(t *testing.T) {
	run, err := NewRunner("original").Run(context.Background(), testRows())
	require.NoError(t, err)
	require.Equal(t, "original", run.Name)
	require.NotEmpty(t, run.ID)
	require.Len(t, run.Rows, 2)

	// The relevant document sits at rank 2 in both queries.
	require.InDelta(t, 0.5, summaryValue(t, run.Summary, MetricMRR), 1e-9)
	require.Zero(t, summaryValue(t, run.Summary, "precision@1"))
}

func TestRunner_RerankedImproves(t *testing.T) {
	ce := reranker.NewCrossEncoder(testScorer())
	run, err := NewRunner("reranked", WithReranker(ce)).Run(context.Background(), testRows())
	require.NoError(t, err)

	// Reranking moves the relevant document to rank 1 in both queries.
	require.InDelta(t, 1.0, summaryValue(t, run.Summary, MetricMRR), 1e-9)
	require.InDelta(t, 1.0, summaryValue(t, run.Summary, "precision@1"), 1e-9)
	require.Equal(t, []string{"good.md", "bad.md"}, run.Rows[0].RetrievedIDs)
}

func TestRunner_InputRowsNotMutated(t *testing.T) {
	rows := testRows()
	ce := reranker.NewCrossEncoder(testScorer())

	_, err := NewRunner("reranked", WithReranker(ce)).Run(context.Background(), rows)
	require.NoError(t, err)

	// The caller's rows keep the original ranking for reruns.
	require.Equal(t, "bad.md,good.md", rows[0].RetrievedDocs)
	require.Equal(t, "wrong.md,right.md", rows[1].RetrievedDocs)
}

func TestRunner_Concurrent(t *testing.T) {
	config := DefaultConfig()
	config.Concurrency = 4

	ce := reranker.NewCrossEncoder(testScorer())
	run, err := NewRunner("reranked", WithReranker(ce), WithConfig(config)).
		Run(context.Background(), testRows())
	require.NoError(t, err)
	require.InDelta(t, 1.0, summaryValue(t, run.Summary, MetricMRR), 1e-9)
}

func TestRunner_ScorerFailureAborts(t *testing.T) {
	ce := reranker.NewCrossEncoder(&scorertest.Failing{Message: "backend down"})

	_, err := NewRunner("reranked", WithReranker(ce)).Run(context.Background(), testRows())
	require.Error(t, err)
	require.Contains(t, err.Error(), "backend down")
}

func TestRunner_ScorerFailureSkips(t *testing.T) {
	config := DefaultConfig()
	config.OnScorerFailure = FailureSkip

	ce := reranker.NewCrossEncoder(&scorertest.Failing{Message: "backend down"})
	run, err := NewRunner("reranked", WithReranker(ce), WithConfig(config)).
		Run(context.Background(), testRows())
	require.NoError(t, err)

	// Skipped queries keep their pre-rerank ranking.
	require.InDelta(t, 0.5, summaryValue(t, run.Summary, MetricMRR), 1e-9)
}

func TestRunner_MalformedChunksDegradeToEmpty(t *testing.T) {
	rows := []dataset.Row{{
		Query:           "broken",
		RelevantDocs:    `["a.md"]`,
		RetrievedChunks: `[{"chunk": "text"`,
		RetrievedDocs:   "a.md",
	}}

	ce := reranker.NewCrossEncoder(testScorer())
	run, err := NewRunner("reranked", WithReranker(ce)).Run(context.Background(), rows)
	require.NoError(t, err)

	// Nothing to rerank, so the retrieved list becomes empty.
	require.Empty(t, run.Rows[0].RetrievedIDs)
	require.Zero(t, summaryValue(t, run.Summary, MetricMRR))
}
