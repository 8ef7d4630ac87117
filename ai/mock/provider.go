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


package mock

import "github.com/docdex/docdex/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates the mock service instances.
type MockProvider struct {
	matcher  *MockDocumentMatcher
	criteria *MockCriteriaExtractor
	metadata *MockMetadataExtractor
	keywords *MockKeywordExtractor
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use GetMockMatcher() and friends to access concrete types for assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		matcher:  NewMockDocumentMatcher(),
		criteria: NewMockCriteriaExtractor(),
		metadata: NewMockMetadataExtractor(),
		keywords: NewMockKeywordExtractor(),
	}
}

// DocumentMatcher returns the mock matcher.
func (p *MockProvider) DocumentMatcher() ai.DocumentMatcher {
	return p.matcher
}

// CriteriaExtractor returns the mock criteria extractor.
func (p *MockProvider) CriteriaExtractor() ai.CriteriaExtractor {
	return p.criteria
}

// MetadataExtractor returns the mock metadata extractor.
func (p *MockProvider) MetadataExtractor() ai.MetadataExtractor {
	return p.metadata
}

// KeywordExtractor returns the mock keyword extractor.
func (p *MockProvider) KeywordExtractor() ai.KeywordExtractor {
	return p.keywords
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockMatcher returns the underlying mock matcher for test assertions.
func (p *MockProvider) GetMockMatcher() *MockDocumentMatcher {
	return p.matcher
}

// GetMockCriteria returns the underlying mock criteria extractor for test assertions.
func (p *MockProvider) GetMockCriteria() *MockCriteriaExtractor {
	return p.criteria
}

// GetMockMetadata returns the underlying mock metadata extractor for test assertions.
func (p *MockProvider) GetMockMetadata() *MockMetadataExtractor {
	return p.metadata
}

// GetMockKeywords returns the underlying mock keyword extractor for test assertions.
func (p *MockProvider) GetMockKeywords() *MockKeywordExtractor {
	return p.keywords
}
