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
	"strconv"

	"github.com/docdex/docdex/ai"
	"github.com/docdex/docdex/core"
)

// DirectMatch asks the model to pick relevant documents from the collection
// in a single round-trip. The whole collection travels as projections, so
// this strategy suits personal-scale collections where one request fits.
type DirectMatch struct {
	matcher ai.DocumentMatcher
	logger  *slog.Logger
}

// NewDirectMatch creates the single-round-trip search strategy.
func NewDirectMatch(matcher ai.DocumentMatcher, opts ...Option) (*DirectMatch, error) {
	if matcher == nil {
		return nil, ErrMatcherRequired
	}

	cfg := newOptions(opts...)
	return &DirectMatch{
		matcher: matcher,
		logger:  cfg.logger.With("strategy", "direct"),
	}, nil
}

// Name identifies the strategy.
func (d *DirectMatch) Name() string {
	return "direct"
}

// Search projects the collection, asks the model, and parses the returned
// ids. An empty collection returns immediately without a model call. Ids
// that do not parse or that the model invented are dropped.
func (d *DirectMatch) Search(ctx context.Context, query string, docs []*core.Document) ([]core.ID, error) {
	projections := ai.ProjectDocuments(docs)
	if len(projections) == 0 {
		d.logger.Debug("empty collection, skipping model call")
		return nil, nil
	}

	raw, err := d.matcher.MatchDocuments(ctx, query, projections)
	if err != nil {
		return nil, err
	}

	known := make(map[core.ID]struct{}, len(projections))
	for _, projection := range projections {
		if id, err := strconv.ParseUint(projection.ID, 10, 64); err == nil {
			known[core.ID(id)] = struct{}{}
		}
	}

	ids := make([]core.ID, 0, len(raw))
	for _, s := range raw {
		parsed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			d.logger.Warn("unparseable id from model dropped", "id", s)
			continue
		}
		if _, ok := known[core.ID(parsed)]; !ok {
			continue
		}
		ids = append(ids, core.ID(parsed))
	}

	d.logger.Debug("direct match finished", "query", query, "hits", len(ids))
	return ids, nil
}
