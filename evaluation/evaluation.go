//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

// Package evaluation runs retrieval evaluation passes and compares their
// results. A pass reranks each query's retrieved passages (optionally),
// computes per-query IR metrics, and reduces them to a named summary;
// summaries of different passes are then joined into a delta report.
package evaluation

import (
	"fmt"
	"time"

	"trpc.group/trpc-go/trpc-rankeval-go/metrics"
)

// Names of dataset-level summary metrics.
const (
	MetricMAP = "map"
	MetricMRR = "mrr"
)

// PrecisionName returns the summary metric name for precision at k.
func PrecisionName(k int) string { return fmt.Sprintf("precision@%d", k) }

// RecallName returns the summary metric name for recall at k.
func RecallName(k int) string { return fmt.Sprintf("recall@%d", k) }

// NDCGName returns the summary metric name for NDCG at k.
func NDCGName(k int) string { return fmt.Sprintf("ndcg@%d", k) }

// HitRateName returns the summary metric name for the top-k hit rate.
func HitRateName(k int) string { return fmt.Sprintf("hit_rate@%d", k) }

// SummaryRow is one named aggregate statistic over all queries of a run.
type SummaryRow struct {
	// Metric is the metric name.
	Metric string `json:"metric"`

	// Value is the aggregated value.
	Value float64 `json:"value"`
}

// Run is the result of one evaluation pass over a dataset.
type Run struct {
	// ID is the unique identifier for this evaluation run.
	ID string `json:"id"`

	// Name is the experiment name, e.g. "original" or "reranked".
	Name string `json:"name"`

	// Timestamp records when the evaluation was performed.
	Timestamp time.Time `json:"timestamp"`

	// Rows holds the per-query metric rows.
	Rows []metrics.Row `json:"-"`

	// Summary holds the dataset-level metrics in fixed order.
	Summary []SummaryRow `json:"summary"`
}
