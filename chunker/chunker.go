//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

// Package chunker provides text chunking strategies for relevance scoring.
package chunker

import (
	"strings"
	"unicode/utf8"
)

// defaultMaxLength bounds chunks to the input window of typical
// cross-encoder relevance models.
const defaultMaxLength = 512

// Strategy defines the interface for text chunking strategies.
type Strategy interface {
	// Chunk splits text into chunks based on the strategy's algorithm.
	Chunk(text string) ([]string, error)
}

// WordChunking splits text into bounded-size chunks on word boundaries.
// Words are packed greedily: a word joins the current chunk while the
// running character length (each word plus one separator) stays within the
// configured maximum. A single word longer than the maximum becomes its own
// oversized chunk; words are never split.
type WordChunking struct {
	maxLength int
}

// Option represents a functional option for configuring WordChunking.
type Option func(*WordChunking)

// WithMaxLength sets the maximum chunk length in characters.
// Non-positive values fall back to the default.
func WithMaxLength(length int) Option {
	return func(wc *WordChunking) {
		if length <= 0 {
			length = defaultMaxLength
		}
		wc.maxLength = length
	}
}

// NewWordChunking creates a new word-boundary chunking strategy with options.
func NewWordChunking(opts ...Option) *WordChunking {
	wc := &WordChunking{
		maxLength: defaultMaxLength,
	}
	// Apply options.
	for _, opt := range opts {
		opt(wc)
	}
	return wc
}

// MaxLength returns the configured maximum chunk length.
func (w *WordChunking) MaxLength() int {
	return w.maxLength
}

// Chunk splits the text into word chunks. Empty or all-whitespace input
// yields no chunks. The function is pure: no state is retained between calls.
func (w *WordChunking) Chunk(text string) ([]string, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	var chunks []string
	current := make([]string, 0, len(words))
	currentLen := 0

	for _, word := range words {
		cost := utf8.RuneCountInString(word) + 1 // word plus one separator
		if len(current) > 0 && currentLen+cost > w.maxLength {
			chunks = append(chunks, strings.Join(current, " "))
			current = current[:0]
			currentLen = 0
		}
		current = append(current, word)
		currentLen += cost
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks, nil
}
