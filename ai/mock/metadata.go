package mock

import (
	"context"
	"strings"

	"github.com/docdex/docdex/ai"
)

// MockMetadataExtractor is a test double for ai.MetadataExtractor.
// It allows custom behavior injection via function fields.
type MockMetadataExtractor struct {
	// ExtractMetadataFunc is called by ExtractMetadata if set.
	// If nil, derives trivial metadata from the first words of the text.
	ExtractMetadataFunc func(ctx context.Context, text string) (ai.DocumentMetadata, error)

	callCount int
}

// NewMockMetadataExtractor creates a mock metadata extractor with default behavior.
func NewMockMetadataExtractor() *MockMetadataExtractor {
	return &MockMetadataExtractor{}
}

// ExtractMetadata returns deterministic metadata built from the text itself:
// the first word becomes the type and the first sentence the summary.
func (m *MockMetadataExtractor) ExtractMetadata(ctx context.Context, text string) (ai.DocumentMetadata, error) {
	m.callCount++

	if m.ExtractMetadataFunc != nil {
		return m.ExtractMetadataFunc(ctx, text)
	}

	text = strings.TrimSpace(text)
	meta := ai.DocumentMetadata{Type: "Document"}
	if text == "" {
		return meta, nil
	}

	if words := strings.Fields(text); len(words) > 0 {
		word := strings.ToLower(strings.Trim(words[0], ".,!?"))
		if word != "" {
			meta.Type = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	summary := text
	if idx := strings.IndexAny(summary, ".!?"); idx > 0 {
		summary = summary[:idx+1]
	}
	meta.Summary = summary
	return meta, nil
}

// CallCount returns the number of times ExtractMetadata was called.
func (m *MockMetadataExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockMetadataExtractor) Reset() {
	m.callCount = 0
	m.ExtractMetadataFunc = nil
}
