//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

// Package dataset loads retrieval evaluation datasets from CSV files.
//
// A dataset has one row per query. Identifier lists and passage lists are
// kept in their serialized form; the metric and rerank stages parse them
// with their own tolerance rules.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Default column names in evaluation CSV files.
const (
	ColumnQuery           = "query_text"
	ColumnRelevantDocs    = "relevant_doc_ids"
	ColumnRetrievedChunks = "retrieved_chunks"
	ColumnRetrievedDocs   = "retrieved_doc_ids"
)

// Row is one evaluation query with its ground truth and retrieval output.
type Row struct {
	// Query is the query text.
	Query string

	// RelevantDocs is the serialized ground-truth identifier list
	// (JSON array form). Invariant across experimental runs.
	RelevantDocs string

	// RetrievedChunks is the serialized retrieved passage list
	// (JSON array of {chunk, relative_path} objects), the pre-rerank stage.
	RetrievedChunks string

	// RetrievedDocs is the serialized ordered identifier list
	// (comma-joined form). Replaced by each experimental run.
	RetrievedDocs string
}

// Loader reads evaluation rows from CSV content.
type Loader struct {
	queryColumn           string
	relevantDocsColumn    string
	retrievedChunksColumn string
	retrievedDocsColumn   string
}

// Option represents a functional option for configuring the Loader.
type Option func(*Loader)

// WithQueryColumn overrides the query column name.
func WithQueryColumn(name string) Option {
	return func(l *Loader) {
		l.queryColumn = name
	}
}

// WithRelevantDocsColumn overrides the ground-truth column name.
func WithRelevantDocsColumn(name string) Option {
	return func(l *Loader) {
		l.relevantDocsColumn = name
	}
}

// WithRetrievedChunksColumn overrides the retrieved-passages column name.
func WithRetrievedChunksColumn(name string) Option {
	return func(l *Loader) {
		l.retrievedChunksColumn = name
	}
}

// WithRetrievedDocsColumn overrides the retrieved-identifiers column name.
func WithRetrievedDocsColumn(name string) Option {
	return func(l *Loader) {
		l.retrievedDocsColumn = name
	}
}

// NewLoader creates a CSV loader with the given options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		queryColumn:           ColumnQuery,
		relevantDocsColumn:    ColumnRelevantDocs,
		retrievedChunksColumn: ColumnRetrievedChunks,
		retrievedDocsColumn:   ColumnRetrievedDocs,
	}
	// Apply options.
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFromReader reads evaluation rows from CSV content.
// The first record is the header; the query column is required, the other
// columns are optional and default to empty.
func (l *Loader) LoadFromReader(reader io.Reader) ([]Row, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	queryIdx, ok := columns[l.queryColumn]
	if !ok {
		return nil, fmt.Errorf("CSV header is missing the %q column", l.queryColumn)
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV record: %w", err)
		}
		if queryIdx >= len(record) {
			continue
		}
		rows = append(rows, Row{
			Query:           record[queryIdx],
			RelevantDocs:    field(record, l.relevantDocsColumn),
			RetrievedChunks: field(record, l.retrievedChunksColumn),
			RetrievedDocs:   field(record, l.retrievedDocsColumn),
		})
	}
	return rows, nil
}

// LoadFromFile reads evaluation rows from a CSV file.
func (l *Loader) LoadFromFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return l.LoadFromReader(f)
}
