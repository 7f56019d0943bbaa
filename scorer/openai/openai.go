//
// Tencent is pleased to support the open source community by making trpc-rankeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rankeval-go is licensed under the Apache License Version 2.0.
//
//

// Package openai provides an OpenAI-compatible batch relevance scorer.
//
// The whole batch is scored in a single chat completion request: the model
// receives the query and every candidate text at once and must answer with a
// JSON array containing one score per text. This keeps one model invocation
// per rerank call instead of one per chunk.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"trpc.group/trpc-go/trpc-rankeval-go/log"
)

const systemPrompt = `You are a relevance judge. Given a query and a numbered list of passages,
rate how relevant each passage is to the query on a scale from 0 to 100.
Respond with only a JSON array of numbers, one per passage, in the same order.`

// Scorer scores (query, text) batches through an OpenAI-compatible chat API.
type Scorer struct {
	client openai.Client
	name   string
}

// options holds configuration produced by Option values.
type options struct {
	// APIKey authenticates against the API.
	APIKey string
	// BaseURL overrides the API endpoint, for OpenAI-compatible backends.
	BaseURL string
	// OpenAIOptions are extra request options passed through to the client.
	OpenAIOptions []openaiopt.RequestOption
}

// Option configures the scorer.
type Option func(*options)

// WithAPIKey sets the API key.
func WithAPIKey(key string) Option {
	return func(opts *options) {
		opts.APIKey = key
	}
}

// WithBaseURL sets the base URL for OpenAI-compatible backends.
func WithBaseURL(url string) Option {
	return func(opts *options) {
		opts.BaseURL = url
	}
}

// WithOpenAIOptions appends extra request options for the underlying client.
func WithOpenAIOptions(openaiOpts ...openaiopt.RequestOption) Option {
	return func(opts *options) {
		opts.OpenAIOptions = append(opts.OpenAIOptions, openaiOpts...)
	}
}

// New creates a scorer backed by the named chat model.
func New(name string, opts ...Option) *Scorer {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var clientOpts []openaiopt.RequestOption
	if o.APIKey != "" {
		clientOpts = append(clientOpts, openaiopt.WithAPIKey(o.APIKey))
	}
	if o.BaseURL != "" {
		clientOpts = append(clientOpts, openaiopt.WithBaseURL(o.BaseURL))
	}
	clientOpts = append(clientOpts, o.OpenAIOptions...)

	return &Scorer{
		client: openai.NewClient(clientOpts...),
		name:   name,
	}
}

// ScoreBatch implements the scorer.Scorer interface.
func (s *Scorer) ScoreBatch(ctx context.Context, query string, texts []string) ([]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(s.name),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(systemPrompt),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(buildPrompt(query, texts)),
					},
				},
			},
		},
		Temperature: openai.Float(0),
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	content := completion.Choices[0].Message.Content
	scores, err := parseScores(content, len(texts))
	if err != nil {
		log.Debugf("Unusable scorer response: %q", content)
		return nil, err
	}
	return scores, nil
}

// buildPrompt renders the query and numbered passages for the judge model.
func buildPrompt(query string, texts []string) string {
	var sb strings.Builder
	sb.WriteString("Query: ")
	sb.WriteString(query)
	sb.WriteString("\n\nPassages:\n")
	for i, text := range texts {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, text)
	}
	fmt.Fprintf(&sb, "\nReturn a JSON array of %d scores.", len(texts))
	return sb.String()
}

// parseScores extracts the JSON score array from a model response.
// The response may wrap the array in prose or a code fence.
func parseScores(content string, want int) ([]float64, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array in scorer response")
	}

	var scores []float64
	if err := json.Unmarshal([]byte(content[start:end+1]), &scores); err != nil {
		return nil, fmt.Errorf("decode scorer response: %w", err)
	}
	if len(scores) != want {
		return nil, fmt.Errorf("scorer returned %d scores for %d texts", len(scores), want)
	}
	return scores, nil
}
