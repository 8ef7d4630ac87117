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
	"sort"
	"strings"

	"github.com/docdex/docdex/ai"
	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/fuzzy"
)

// CriteriaExtraction sends only the query to the model, receives structured
// criteria back, and matches them locally with the fuzzy matcher. The
// collection never leaves the process, at the cost of missing matches the
// model would have seen in summaries.
type CriteriaExtraction struct {
	extractor ai.CriteriaExtractor
	matcher   fuzzy.Matcher
	logger    *slog.Logger
}

// NewCriteriaExtraction creates the criteria-based search strategy.
func NewCriteriaExtraction(extractor ai.CriteriaExtractor, matcher fuzzy.Matcher, opts ...Option) (*CriteriaExtraction, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if matcher == nil {
		matcher = fuzzy.NewMatcher()
	}

	cfg := newOptions(opts...)
	return &CriteriaExtraction{
		extractor: extractor,
		matcher:   matcher,
		logger:    cfg.logger.With("strategy", "criteria"),
	}, nil
}

// Name identifies the strategy.
func (c *CriteriaExtraction) Name() string {
	return "criteria"
}

// Search extracts criteria from the query and scores the collection locally.
// Entity criteria (owner, type, country) are matched strictly; keywords are
// matched loosely across all document fields and rank the survivors.
func (c *CriteriaExtraction) Search(ctx context.Context, query string, docs []*core.Document) ([]core.ID, error) {
	eligible := make([]*core.Document, 0, len(docs))
	for _, doc := range docs {
		if doc == nil || doc.IsProcessing {
			continue
		}
		eligible = append(eligible, doc)
	}
	if len(eligible) == 0 {
		c.logger.Debug("empty collection, skipping model call")
		return nil, nil
	}

	criteria, err := c.extractor.ExtractCriteria(ctx, query)
	if err != nil {
		return nil, err
	}
	if criteria.Empty() {
		// Nothing structured to go on; fall back to a loose match on the
		// raw query so the user still gets an answer.
		criteria.Keywords = strings.Fields(strings.ToLower(query))
	}

	type scored struct {
		id    core.ID
		score float64
		order int
	}
	results := make([]scored, 0, len(eligible))

	for position, doc := range eligible {
		if !c.matchesEntities(criteria, doc) {
			continue
		}

		score, ok := c.keywordScore(criteria.Keywords, doc)
		if !ok {
			continue
		}
		results = append(results, scored{id: doc.Id, score: score, order: position})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score < results[j].score
		}
		return results[i].order < results[j].order
	})

	ids := make([]core.ID, 0, len(results))
	for _, result := range results {
		ids = append(ids, result.id)
	}

	c.logger.Debug("criteria match finished",
		"query", query,
		"entities", !criteria.Empty(),
		"hits", len(ids))
	return ids, nil
}

// matchesEntities applies the strict entity criteria. Each named entity must
// match its document field within the identity threshold; a document missing
// the field fails that criterion.
func (c *CriteriaExtraction) matchesEntities(criteria ai.SearchCriteria, doc *core.Document) bool {
	checks := []struct {
		want string
		have string
	}{
		{criteria.Owner, doc.Owner},
		{criteria.DocumentType, doc.Type},
		{criteria.Country, doc.Country},
	}
	for _, check := range checks {
		if check.want == "" {
			continue
		}
		if check.have == "" {
			return false
		}
		if len(c.matcher.SearchStrings(check.want, []string{check.have}, fuzzy.ThresholdIdentity)) == 0 {
			return false
		}
	}
	return true
}

// keywordScore scores a document against the keyword list, best keyword
// wins. With no keywords every document that passed the entity checks
// scores 0.
func (c *CriteriaExtraction) keywordScore(keywords []string, doc *core.Document) (float64, bool) {
	if len(keywords) == 0 {
		return 0, true
	}

	best := -1.0
	for _, keyword := range keywords {
		matches := c.matcher.SearchDocuments(keyword, []*core.Document{doc}, fuzzy.DocumentKeys(), fuzzy.ThresholdExploratory)
		if len(matches) == 0 {
			continue
		}
		if best < 0 || matches[0].Score < best {
			best = matches[0].Score
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
