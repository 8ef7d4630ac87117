// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.DocumentMatcher,
// ai.CriteriaExtractor, ai.MetadataExtractor, ai.KeywordExtractor, and
// ai.Provider for use in unit tests. The mocks allow tests to run without
// external AI service dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	ids, err := mockProvider.DocumentMatcher().MatchDocuments(ctx, "passport", docs)
//
//	// Custom behavior injection
//	matcher := mock.NewMockDocumentMatcher()
//	matcher.MatchDocumentsFunc = func(ctx context.Context, query string, docs []ai.DocumentProjection) ([]string, error) {
//	    return []string{"42"}, nil
//	}
//
//	// Check call counts
//	count := matcher.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockDocumentMatcher: Substring matching over projected fields
//   - MockCriteriaExtractor: Query words become keywords
//   - MockMetadataExtractor: Metadata derived from the first words of the text
//   - MockKeywordExtractor: Longest words of the text, lowercased
package mock
