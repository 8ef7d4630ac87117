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

// KeywordExtractor implements ai.KeywordExtractor using OpenAI-compatible chat APIs.
type KeywordExtractor struct {
	client      llms.Model
	maxKeywords int
	charLimit   int
	logger      *slog.Logger
}

// keywordResult is the wrapper structure for the LLM's JSON response.
type keywordResult struct {
	Keywords []string `json:"keywords"`
}

// newKeywordExtractor is an internal constructor that returns the concrete type.
func newKeywordExtractor(config *ai.Config) (*KeywordExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	return &KeywordExtractor{
		client:      client,
		maxKeywords: config.MaxKeywords,
		charLimit:   config.SummaryCharLimit,
		logger:      slog.Default().With("component", "openai-keywords"),
	}, nil
}

// NewKeywordExtractor creates a new keyword extractor using the provided
// configuration.
//
// Returns ai.KeywordExtractor interface to enforce abstraction.
func NewKeywordExtractor(config *ai.Config) (ai.KeywordExtractor, error) {
	return newKeywordExtractor(config)
}

// ExtractKeywords generates lowercase retrieval keywords for document text,
// capped at the configured maximum.
func (e *KeywordExtractor) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	text = truncateText(text, e.charLimit)
	system := fmt.Sprintf(keywordsPromptTemplate, keywordsResponseSchema, e.maxKeywords)

	var result keywordResult
	if err := completeJSON(ctx, e.client, e.logger, system, text, &result); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(result.Keywords))
	keywords := make([]string, 0, len(result.Keywords))
	for _, keyword := range result.Keywords {
		keyword = strings.TrimSpace(strings.ToLower(keyword))
		if keyword == "" {
			continue
		}
		if _, dup := seen[keyword]; dup {
			continue
		}
		seen[keyword] = struct{}{}
		keywords = append(keywords, keyword)
		if len(keywords) == e.maxKeywords {
			break
		}
	}

	e.logger.Debug("extracted keywords", "count", len(keywords))
	return keywords, nil
}
