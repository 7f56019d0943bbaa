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
	"sort"

	"trpc.group/trpc-go/trpc-rankeval-go/metrics"
)

// Summarize reduces per-query metric rows to dataset-level aggregates in a
// fixed order: MAP, MRR, then precision/recall/NDCG/hit-rate at each cutoff,
// cutoffs ascending. Hit rate at k is the percentage of queries whose
// precision@k is positive. Means are order-invariant, so row order does not
// matter. An empty row set yields all-zero values.
func Summarize(rows []metrics.Row, ks []int) []SummaryRow {
	if len(ks) == 0 {
		ks = metrics.DefaultKs
	}
	sorted := make([]int, len(ks))
	copy(sorted, ks)
	sort.Ints(sorted)

	summary := []SummaryRow{
		{Metric: MetricMAP, Value: meanOver(rows, func(row metrics.Row) float64 {
			return metrics.AveragePrecision(row.RelevantIDs, row.RetrievedIDs)
		})},
		{Metric: MetricMRR, Value: meanOver(rows, func(row metrics.Row) float64 {
			return metrics.ReciprocalRank(row.RelevantIDs, row.RetrievedIDs)
		})},
	}

	for _, k := range sorted {
		summary = append(summary,
			SummaryRow{Metric: PrecisionName(k), Value: meanOver(rows, func(row metrics.Row) float64 {
				return row.PrecisionAt[k]
			})},
			SummaryRow{Metric: RecallName(k), Value: meanOver(rows, func(row metrics.Row) float64 {
				return row.RecallAt[k]
			})},
			SummaryRow{Metric: NDCGName(k), Value: meanOver(rows, func(row metrics.Row) float64 {
				return row.NDCGAt[k]
			})},
			SummaryRow{Metric: HitRateName(k), Value: 100 * meanOver(rows, func(row metrics.Row) float64 {
				if row.PrecisionAt[k] > 0 {
					return 1
				}
				return 0
			})},
		)
	}
	return summary
}

// meanOver averages a per-row statistic, 0 for an empty row set.
func meanOver(rows []metrics.Row, stat func(metrics.Row) float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	sum := 0.0
	for _, row := range rows {
		sum += stat(row)
	}
	return sum / float64(len(rows))
}
