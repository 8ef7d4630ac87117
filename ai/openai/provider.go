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
	"log/slog"

	"github.com/docdex/docdex/ai"
)

// Provider implements ai.Provider using OpenAI-compatible services.
// It manages the matcher and extractor instances.
type Provider struct {
	config   *ai.Config
	matcher  *DocumentMatcher
	criteria *CriteriaExtractor
	metadata *MetadataExtractor
	keywords *KeywordExtractor
	logger   *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	matcher, err := newDocumentMatcher(config)
	if err != nil {
		return nil, err
	}

	criteria, err := newCriteriaExtractor(config)
	if err != nil {
		return nil, err
	}

	metadata, err := newMetadataExtractor(config)
	if err != nil {
		return nil, err
	}

	keywords, err := newKeywordExtractor(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:   config,
		matcher:  matcher,
		criteria: criteria,
		metadata: metadata,
		keywords: keywords,
		logger:   slog.Default().With("component", "openai-provider"),
	}, nil
}

// DocumentMatcher returns the intelligent-search service.
func (p *Provider) DocumentMatcher() ai.DocumentMatcher {
	return p.matcher
}

// CriteriaExtractor returns the query criteria extraction service.
func (p *Provider) CriteriaExtractor() ai.CriteriaExtractor {
	return p.criteria
}

// MetadataExtractor returns the ingestion metadata service.
func (p *Provider) MetadataExtractor() ai.MetadataExtractor {
	return p.metadata
}

// KeywordExtractor returns the keyword generation service.
func (p *Provider) KeywordExtractor() ai.KeywordExtractor {
	return p.keywords
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
