//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

// Package passage defines the retrieved-passage data model shared by the
// reranking and evaluation packages.
package passage

// Passage represents one retrieved candidate snippet tied to a source file.
type Passage struct {
	// Text is the retrieved chunk text.
	Text string `json:"chunk"`

	// FileName identifies the source file the text was retrieved from.
	FileName string `json:"relative_path"`

	// Score is the relevance score assigned by a reranker. Zero until ranked.
	Score float64 `json:"score,omitempty"`
}

// New creates a passage with a zero score.
func New(text, fileName string) *Passage {
	return &Passage{
		Text:     text,
		FileName: fileName,
	}
}

// FileNames returns the source file of each passage, in order, with
// duplicates collapsed to their first occurrence.
func FileNames(passages []*Passage) []string {
	names := make([]string, 0, len(passages))
	for _, p := range passages {
		names = append(names, p.FileName)
	}
	return DedupeIDs(names)
}

// DedupeIDs collapses duplicate identifiers to their first occurrence,
// preserving order. Metric computation requires unique retrieved IDs.
func DedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
