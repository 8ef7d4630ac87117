package mock

import (
	"context"
	"strings"

	"github.com/docdex/docdex/ai"
)

// MockCriteriaExtractor is a test double for ai.CriteriaExtractor.
// It allows custom behavior injection via function fields.
type MockCriteriaExtractor struct {
	// ExtractCriteriaFunc is called by ExtractCriteria if set.
	// If nil, the whole query becomes lowercase keywords.
	ExtractCriteriaFunc func(ctx context.Context, query string) (ai.SearchCriteria, error)

	callCount int
}

// NewMockCriteriaExtractor creates a mock criteria extractor with default behavior.
func NewMockCriteriaExtractor() *MockCriteriaExtractor {
	return &MockCriteriaExtractor{}
}

// ExtractCriteria turns each query word into a keyword. Tests that need
// entity fields set ExtractCriteriaFunc instead.
func (m *MockCriteriaExtractor) ExtractCriteria(ctx context.Context, query string) (ai.SearchCriteria, error) {
	m.callCount++

	if m.ExtractCriteriaFunc != nil {
		return m.ExtractCriteriaFunc(ctx, query)
	}

	return ai.SearchCriteria{
		Keywords: strings.Fields(strings.ToLower(query)),
	}, nil
}

// CallCount returns the number of times ExtractCriteria was called.
func (m *MockCriteriaExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockCriteriaExtractor) Reset() {
	m.callCount = 0
	m.ExtractCriteriaFunc = nil
}
