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
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatSummary formats a run's summary as a human-readable table.
func FormatSummary(run *Run) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Run: %s (%s)\n", run.Name, run.ID))
	sb.WriteString(fmt.Sprintf("Timestamp: %s\n", run.Timestamp.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Queries: %d\n", len(run.Rows)))
	sb.WriteString("Metrics:\n")
	for _, row := range run.Summary {
		sb.WriteString(fmt.Sprintf("  %-14s %9.4f\n", row.Metric, row.Value))
	}
	return sb.String()
}

// FormatComparison formats a comparison across runs as a human-readable
// table. Undefined percent changes (zero baseline) print as "n/a".
func FormatComparison(runs []*Run, rows []ComparisonRow) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-14s", "metric"))
	for _, run := range runs {
		sb.WriteString(fmt.Sprintf(" %12s", run.Name))
	}
	for _, run := range runs[1:] {
		sb.WriteString(fmt.Sprintf(" %12s %12s", "Δ "+run.Name, "Δ% "+run.Name))
	}
	sb.WriteString("\n")

	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-14s", row.Metric))
		for _, value := range row.Values {
			sb.WriteString(fmt.Sprintf(" %12.4f", value))
		}
		for i := range row.Change {
			sb.WriteString(fmt.Sprintf(" %+12.4f %12s", row.Change[i], formatPercent(row.PercentChange[i])))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatPercent renders a percent change, "n/a" when undefined.
func formatPercent(percent float64) string {
	if math.IsNaN(percent) {
		return "n/a"
	}
	return fmt.Sprintf("%+.2f%%", percent)
}
