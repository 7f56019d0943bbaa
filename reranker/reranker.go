//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

// Package reranker provides passage re-ranking for retrieval evaluation.
package reranker

import (
	"context"

	"trpc.group/trpc-go/trpc-rankeval-go/passage"
)

// Reranker re-orders retrieved passages by relevance to a query.
type Reranker interface {
	// Rerank returns the passages ordered by descending relevance score.
	Rerank(ctx context.Context, query string, passages []*passage.Passage) ([]*passage.Passage, error)
}
