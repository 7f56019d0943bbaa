//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCSV = `query_text,relevant_doc_ids,retrieved_chunks,retrieved_doc_ids
how to log,"[""log.md""]","[{""chunk"": ""use the log package"", ""relative_path"": ""log.md""}]","log.md,config.md"
how to test,"[""test.md"",""helper.md""]","[{""chunk"": ""run go test"", ""relative_path"": ""test.md""}]","other.md,test.md"
`

func TestLoader_LoadFromReader(t *testing.T) {
	rows, err := NewLoader().LoadFromReader(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "how to log", rows[0].Query)
	require.Equal(t, `["log.md"]`, rows[0].RelevantDocs)
	require.Contains(t, rows[0].RetrievedChunks, "use the log package")
	require.Equal(t, "log.md,config.md", rows[0].RetrievedDocs)

	require.Equal(t, "how to test", rows[1].Query)
}

func TestLoader_MissingOptionalColumns(t *testing.T) {
	csvContent := "query_text,relevant_doc_ids\nsome query,\"[\"\"a.md\"\"]\"\n"

	rows, err := NewLoader().LoadFromReader(strings.NewReader(csvContent))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "some query", rows[0].Query)
	require.Equal(t, `["a.md"]`, rows[0].RelevantDocs)
	require.Empty(t, rows[0].RetrievedDocs)
	require.Empty(t, rows[0].RetrievedChunks)
}

func TestLoader_MissingQueryColumn(t *testing.T) {
	_, err := NewLoader().LoadFromReader(strings.NewReader("a,b\n1,2\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "query_text")
}

func TestLoader_CustomColumns(t *testing.T) {
	csvContent := "question,truth\nwhat is a chunk,\"[\"\"chunk.md\"\"]\"\n"

	loader := NewLoader(
		WithQueryColumn("question"),
		WithRelevantDocsColumn("truth"),
	)
	rows, err := loader.LoadFromReader(strings.NewReader(csvContent))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "what is a chunk", rows[0].Query)
	require.Equal(t, `["chunk.md"]`, rows[0].RelevantDocs)
}

func TestLoader_EmptyBody(t *testing.T) {
	rows, err := NewLoader().LoadFromReader(strings.NewReader("query_text\n"))
	require.NoError(t, err)
	require.Empty(t, rows)
}
