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
	"os"

	"gopkg.in/yaml.v3"

	"trpc.group/trpc-go/trpc-rankeval-go/metrics"
)

// FailurePolicy decides how a run reacts to a scorer failure on one query.
type FailurePolicy string

const (
	// FailureAbort stops the whole run on the first scorer failure.
	FailureAbort FailurePolicy = "abort"

	// FailureSkip logs the failure and keeps the query's pre-rerank ranking.
	FailureSkip FailurePolicy = "skip"
)

// Config contains configuration for evaluation runs.
type Config struct {
	// Ks are the rank cutoffs metrics are computed at.
	Ks []int `yaml:"ks"`

	// ChunkMaxLength bounds passage chunks fed to the relevance scorer,
	// in characters.
	ChunkMaxLength int `yaml:"chunk_max_length"`

	// Concurrency is the number of queries reranked in parallel.
	// Each query is independent; 1 keeps the run strictly sequential.
	Concurrency int `yaml:"concurrency"`

	// OnScorerFailure is the per-query scorer failure policy.
	OnScorerFailure FailurePolicy `yaml:"on_scorer_failure"`
}

// DefaultConfig returns a default configuration for evaluation runs.
func DefaultConfig() Config {
	return Config{
		Ks:              metrics.DefaultKs,
		ChunkMaxLength:  512,
		Concurrency:     1,
		OnScorerFailure: FailureAbort,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	content, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(content, &config); err != nil {
		return config, fmt.Errorf("parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	for _, k := range c.Ks {
		if k <= 0 {
			return fmt.Errorf("cutoff k must be positive, got %d", k)
		}
	}
	if c.ChunkMaxLength <= 0 {
		return fmt.Errorf("chunk_max_length must be positive, got %d", c.ChunkMaxLength)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	switch c.OnScorerFailure {
	case FailureAbort, FailureSkip:
	default:
		return fmt.Errorf("unknown scorer failure policy %q", c.OnScorerFailure)
	}
	return nil
}
