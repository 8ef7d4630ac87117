// Copyright 2025 Docdex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/filter"
)

// Runner drives one AI search end to end: it claims a generation token from
// the filter engine, runs the strategy, and applies the outcome. A failure
// still lands the engine in AI-search mode with an explicit empty result, so
// the user sees a real empty state rather than a silent revert.
type Runner struct {
	engine   *filter.Engine
	strategy Strategy
	logger   *slog.Logger
}

// NewRunner creates a search runner.
func NewRunner(engine *filter.Engine, strategy Strategy, opts ...Option) (*Runner, error) {
	if engine == nil {
		return nil, ErrEngineRequired
	}
	if strategy == nil {
		return nil, ErrStrategyRequired
	}

	cfg := newOptions(opts...)
	return &Runner{
		engine:   engine,
		strategy: strategy,
		logger:   cfg.logger.With("component", "search-runner"),
	}, nil
}

// Run executes the query against the engine's current snapshot and applies
// the result. Documents still being processed are not searchable; when
// nothing is searchable the result is empty without a model call. The
// strategy error is returned so callers can tell the user, but the engine
// state is already settled either way.
func (r *Runner) Run(ctx context.Context, query string) ([]*core.Document, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	token := r.engine.BeginAISearch()

	docs := r.engine.Documents()
	searchable := 0
	for _, doc := range docs {
		if !doc.IsProcessing {
			searchable++
		}
	}
	if searchable == 0 {
		r.engine.CompleteAISearch(token, nil)
		r.logger.Debug("nothing searchable, completed empty", "query", query)
		return r.engine.Resolve(), nil
	}

	ids, err := r.strategy.Search(ctx, query, docs)
	if err != nil {
		r.logger.Error("search strategy failed",
			"strategy", r.strategy.Name(),
			"query", query,
			"err", err)
		r.engine.FailAISearch(token)
		return r.engine.Resolve(), err
	}

	if !r.engine.CompleteAISearch(token, ids) {
		r.logger.Debug("search superseded, result discarded", "query", query)
		return r.engine.Resolve(), nil
	}

	r.logger.Info("ai search applied",
		"strategy", r.strategy.Name(),
		"query", query,
		"hits", len(ids))
	return r.engine.Resolve(), nil
}
