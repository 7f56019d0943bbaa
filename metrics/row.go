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
	"trpc.group/trpc-go/trpc-rankeval-go/dataset"
	"trpc.group/trpc-go/trpc-rankeval-go/log"
	"trpc.group/trpc-go/trpc-rankeval-go/passage"
)

// Row is one evaluation query annotated with metric values at each
// configured cutoff.
type Row struct {
	// Query is the query text.
	Query string

	// RelevantIDs is the parsed ground-truth identifier set.
	RelevantIDs []string

	// RetrievedIDs is the parsed, deduplicated retrieved identifier list.
	RetrievedIDs []string

	// PrecisionAt, RecallAt and NDCGAt hold per-cutoff metric values.
	PrecisionAt map[int]float64
	RecallAt    map[int]float64
	NDCGAt      map[int]float64
}

// Compute annotates every dataset row with precision, recall and NDCG at each
// cutoff in ks (DefaultKs when ks is empty).
//
// Serialized identifier lists that fail to parse are reported and treated as
// empty, so one malformed row cannot abort a whole run. Duplicate retrieved
// identifiers collapse to their first occurrence before any metric is
// computed.
func Compute(rows []dataset.Row, ks []int) []Row {
	if len(ks) == 0 {
		ks = DefaultKs
	}

	result := make([]Row, 0, len(rows))
	for _, row := range rows {
		relevant := parseTolerant(row.Query, "relevant", row.RelevantDocs)
		retrieved := passage.DedupeIDs(parseTolerant(row.Query, "retrieved", row.RetrievedDocs))

		computed := Row{
			Query:        row.Query,
			RelevantIDs:  relevant,
			RetrievedIDs: retrieved,
			PrecisionAt:  make(map[int]float64, len(ks)),
			RecallAt:     make(map[int]float64, len(ks)),
			NDCGAt:       make(map[int]float64, len(ks)),
		}
		for _, k := range ks {
			computed.PrecisionAt[k] = PrecisionAtK(relevant, retrieved, k)
			computed.RecallAt[k] = RecallAtK(relevant, retrieved, k)
			computed.NDCGAt[k] = NDCGAtK(relevant, retrieved, k)
		}
		result = append(result, computed)
	}
	return result
}

// parseTolerant parses a serialized identifier list, substituting an empty
// list on malformed input.
func parseTolerant(query, field, serialized string) []string {
	ids, err := passage.ParseIDList(serialized)
	if err != nil {
		log.Errorf("Malformed %s identifier list for query %q, using empty list: %v", field, query, err)
		return nil
	}
	return ids
}
