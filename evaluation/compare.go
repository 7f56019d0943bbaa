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
	"errors"
	"fmt"
	"math"
)

// ErrMetricMismatch indicates that a run lacks a metric the baseline has.
var ErrMetricMismatch = errors.New("summary metric sets do not match")

// ComparisonRow is one metric compared across runs. Values is aligned with
// the compared runs in order; Change and PercentChange are aligned with the
// non-baseline runs and measured against the first (baseline) run.
// PercentChange is NaN when the baseline value is 0.
type ComparisonRow struct {
	// Metric is the metric name.
	Metric string

	// Values holds one value per run, baseline first.
	Values []float64

	// Change holds value minus baseline, one per non-baseline run.
	Change []float64

	// PercentChange holds the relative change in percent, one per
	// non-baseline run. NaN marks an undefined change (zero baseline).
	PercentChange []float64
}

// Compare joins two or more run summaries on metric name, baseline first.
// The baseline's metric order is preserved. A metric present in the baseline
// but absent from a later run is a data-integrity error, not a dropped row.
func Compare(runs ...*Run) ([]ComparisonRow, error) {
	if len(runs) < 2 {
		return nil, fmt.Errorf("comparison needs at least 2 runs, got %d", len(runs))
	}

	baseline := runs[0]
	indexed := make([]map[string]float64, len(runs))
	for i, run := range runs {
		indexed[i] = make(map[string]float64, len(run.Summary))
		for _, row := range run.Summary {
			indexed[i][row.Metric] = row.Value
		}
	}

	rows := make([]ComparisonRow, 0, len(baseline.Summary))
	for _, base := range baseline.Summary {
		row := ComparisonRow{
			Metric: base.Metric,
			Values: []float64{base.Value},
		}
		for i, run := range runs[1:] {
			value, ok := indexed[i+1][base.Metric]
			if !ok {
				return nil, fmt.Errorf("%w: run %q lacks metric %q", ErrMetricMismatch, run.Name, base.Metric)
			}
			row.Values = append(row.Values, value)
			row.Change = append(row.Change, value-base.Value)
			if base.Value == 0 {
				row.PercentChange = append(row.PercentChange, math.NaN())
			} else {
				row.PercentChange = append(row.PercentChange, 100*(value-base.Value)/base.Value)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
