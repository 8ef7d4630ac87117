package mock

import (
	"context"
	"strings"
)

// MockKeywordExtractor is a test double for ai.KeywordExtractor.
// It allows custom behavior injection via function fields.
type MockKeywordExtractor struct {
	// ExtractKeywordsFunc is called by ExtractKeywords if set.
	// If nil, uses the longest words of the text as keywords.
	ExtractKeywordsFunc func(ctx context.Context, text string) ([]string, error)

	callCount int
}

// NewMockKeywordExtractor creates a mock keyword extractor with default behavior.
func NewMockKeywordExtractor() *MockKeywordExtractor {
	return &MockKeywordExtractor{}
}

// ExtractKeywords picks up to 5 distinct words longer than 4 characters,
// lowercased, in text order.
func (m *MockKeywordExtractor) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	m.callCount++

	if m.ExtractKeywordsFunc != nil {
		return m.ExtractKeywordsFunc(ctx, text)
	}

	seen := make(map[string]struct{})
	keywords := make([]string, 0, 5)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if len(word) <= 4 {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
		if len(keywords) == 5 {
			break
		}
	}
	return keywords, nil
}

// CallCount returns the number of times ExtractKeywords was called.
func (m *MockKeywordExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockKeywordExtractor) Reset() {
	m.callCount = 0
	m.ExtractKeywordsFunc = nil
}
