//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

package passage

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseIDList parses a serialized identifier list. Two representations are
// accepted: a JSON string array (`["a.md","b.md"]`, used for ground-truth
// columns) and a comma-joined string (`a.md,b.md`, used for computed IR
// columns). An empty or blank input yields an empty list.
func ParseIDList(serialized string) ([]string, error) {
	trimmed := strings.TrimSpace(serialized)
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var ids []string
		if err := json.Unmarshal([]byte(trimmed), &ids); err != nil {
			return nil, fmt.Errorf("parse JSON identifier list: %w", err)
		}
		return ids, nil
	}
	parts := strings.Split(trimmed, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// ParseList parses a serialized passage list: a JSON array of
// `{"chunk": ..., "relative_path": ...}` objects.
func ParseList(serialized string) ([]*Passage, error) {
	trimmed := strings.TrimSpace(serialized)
	if trimmed == "" {
		return nil, nil
	}
	var passages []*Passage
	if err := json.Unmarshal([]byte(trimmed), &passages); err != nil {
		return nil, fmt.Errorf("parse passage list: %w", err)
	}
	return passages, nil
}
