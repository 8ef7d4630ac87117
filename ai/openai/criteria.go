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


package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/docdex/docdex/ai"
)

// CriteriaExtractor implements ai.CriteriaExtractor using OpenAI-compatible chat APIs.
type CriteriaExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// newCriteriaExtractor is an internal constructor that returns the concrete type.
func newCriteriaExtractor(config *ai.Config) (*CriteriaExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	return &CriteriaExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-criteria"),
	}, nil
}

// NewCriteriaExtractor creates a new query criteria extractor using the
// provided configuration.
//
// Returns ai.CriteriaExtractor interface to enforce abstraction.
func NewCriteriaExtractor(config *ai.Config) (ai.CriteriaExtractor, error) {
	return newCriteriaExtractor(config)
}

// ExtractCriteria pulls the owner, document type, country, and free keywords
// out of a natural-language query.
func (e *CriteriaExtractor) ExtractCriteria(ctx context.Context, query string) (ai.SearchCriteria, error) {
	system := fmt.Sprintf(criteriaPromptTemplate, criteriaResponseSchema)

	var criteria ai.SearchCriteria
	if err := completeJSON(ctx, e.client, e.logger, system, query, &criteria); err != nil {
		return ai.SearchCriteria{}, err
	}

	criteria.Owner = strings.TrimSpace(criteria.Owner)
	criteria.DocumentType = strings.TrimSpace(criteria.DocumentType)
	criteria.Country = strings.TrimSpace(criteria.Country)
	keywords := criteria.Keywords[:0]
	for _, keyword := range criteria.Keywords {
		if keyword = strings.TrimSpace(strings.ToLower(keyword)); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	criteria.Keywords = keywords

	e.logger.Debug("extracted criteria",
		"owner", criteria.Owner,
		"type", criteria.DocumentType,
		"country", criteria.Country,
		"keywords", len(criteria.Keywords))
	return criteria, nil
}
