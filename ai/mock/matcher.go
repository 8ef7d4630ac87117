package mock

import (
	"context"
	"strings"

	"github.com/docdex/docdex/ai"
)

// MockDocumentMatcher is a test double for ai.DocumentMatcher.
// It allows custom behavior injection via function fields.
type MockDocumentMatcher struct {
	// MatchDocumentsFunc is called by MatchDocuments if set.
	// If nil, uses default substring matching over projections.
	MatchDocumentsFunc func(ctx context.Context, query string, docs []ai.DocumentProjection) ([]string, error)

	callCount int
}

// NewMockDocumentMatcher creates a mock matcher with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockDocumentMatcher() *MockDocumentMatcher {
	return &MockDocumentMatcher{}
}

// MatchDocuments selects documents whose projected fields contain any word
// of the query, case-insensitively. This gives tests a deterministic oracle
// without a model behind it.
func (m *MockDocumentMatcher) MatchDocuments(ctx context.Context, query string, docs []ai.DocumentProjection) ([]string, error) {
	m.callCount++

	if m.MatchDocumentsFunc != nil {
		return m.MatchDocumentsFunc(ctx, query, docs)
	}

	words := strings.Fields(strings.ToLower(query))
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		haystack := strings.ToLower(strings.Join(append([]string{
			doc.Owner, doc.Type, doc.Company, doc.Country, doc.Summary,
		}, doc.Keywords...), " "))
		for _, word := range words {
			if strings.Contains(haystack, word) {
				ids = append(ids, doc.ID)
				break
			}
		}
	}
	return ids, nil
}

// CallCount returns the number of times MatchDocuments was called.
func (m *MockDocumentMatcher) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockDocumentMatcher) Reset() {
	m.callCount = 0
	m.MatchDocumentsFunc = nil
}
