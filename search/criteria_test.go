package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docdex/docdex/ai"
	"github.com/docdex/docdex/ai/mock"
	"github.com/docdex/docdex/core"
)

func TestNewCriteriaExtraction(t *testing.T) {
	t.Run("requires an extractor", func(t *testing.T) {
		_, err := NewCriteriaExtraction(nil, nil)
		assert.ErrorIs(t, err, ErrExtractorRequired)
	})

	t.Run("nil matcher gets a default", func(t *testing.T) {
		strategy, err := NewCriteriaExtraction(mock.NewMockCriteriaExtractor(), nil)
		require.NoError(t, err)
		assert.NotNil(t, strategy)
	})
}

func TestCriteriaExtractionSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("empty collection skips the model", func(t *testing.T) {
		extractor := mock.NewMockCriteriaExtractor()
		strategy, err := NewCriteriaExtraction(extractor, nil)
		require.NoError(t, err)

		ids, err := strategy.Search(ctx, "passport", nil)
		require.NoError(t, err)
		assert.Empty(t, ids)
		assert.Equal(t, 0, extractor.CallCount())
	})

	t.Run("entity criteria filter strictly", func(t *testing.T) {
		extractor := mock.NewMockCriteriaExtractor()
		extractor.ExtractCriteriaFunc = func(_ context.Context, _ string) (ai.SearchCriteria, error) {
			return ai.SearchCriteria{Owner: "John Doe", DocumentType: "Passport"}, nil
		}
		strategy, err := NewCriteriaExtraction(extractor, nil)
		require.NoError(t, err)

		ids, err := strategy.Search(ctx, "john's passport", searchFixture())
		require.NoError(t, err)
		assert.Equal(t, []core.ID{1}, ids)
	})

	t.Run("near-miss entity still matches", func(t *testing.T) {
		extractor := mock.NewMockCriteriaExtractor()
		extractor.ExtractCriteriaFunc = func(_ context.Context, _ string) (ai.SearchCriteria, error) {
			return ai.SearchCriteria{Owner: "Jon Doe"}, nil
		}
		strategy, err := NewCriteriaExtraction(extractor, nil)
		require.NoError(t, err)

		ids, err := strategy.Search(ctx, "jon's documents", searchFixture())
		require.NoError(t, err)
		assert.Equal(t, []core.ID{1, 2}, ids)
	})

	t.Run("missing field fails the criterion", func(t *testing.T) {
		extractor := mock.NewMockCriteriaExtractor()
		extractor.ExtractCriteriaFunc = func(_ context.Context, _ string) (ai.SearchCriteria, error) {
			return ai.SearchCriteria{Country: "Denmark"}, nil
		}
		strategy, err := NewCriteriaExtraction(extractor, nil)
		require.NoError(t, err)

		// Document 3 has no country at all.
		ids, err := strategy.Search(ctx, "danish documents", searchFixture())
		require.NoError(t, err)
		assert.Equal(t, []core.ID{1, 2}, ids)
	})

	t.Run("keywords rank the survivors", func(t *testing.T) {
		extractor := mock.NewMockCriteriaExtractor()
		extractor.ExtractCriteriaFunc = func(_ context.Context, _ string) (ai.SearchCriteria, error) {
			return ai.SearchCriteria{Keywords: []string{"invoice"}}, nil
		}
		strategy, err := NewCriteriaExtraction(extractor, nil)
		require.NoError(t, err)

		ids, err := strategy.Search(ctx, "my invoices", searchFixture())
		require.NoError(t, err)
		assert.Equal(t, []core.ID{3}, ids)
	})

	t.Run("empty criteria fall back to the raw query", func(t *testing.T) {
		extractor := mock.NewMockCriteriaExtractor()
		extractor.ExtractCriteriaFunc = func(_ context.Context, _ string) (ai.SearchCriteria, error) {
			return ai.SearchCriteria{}, nil
		}
		strategy, err := NewCriteriaExtraction(extractor, nil)
		require.NoError(t, err)

		ids, err := strategy.Search(ctx, "passport", searchFixture())
		require.NoError(t, err)
		assert.Equal(t, []core.ID{1}, ids)
	})

	t.Run("extractor failure propagates", func(t *testing.T) {
		extractor := mock.NewMockCriteriaExtractor()
		extractor.ExtractCriteriaFunc = func(_ context.Context, _ string) (ai.SearchCriteria, error) {
			return ai.SearchCriteria{}, assert.AnError
		}
		strategy, err := NewCriteriaExtraction(extractor, nil)
		require.NoError(t, err)

		_, err = strategy.Search(ctx, "anything", searchFixture())
		assert.ErrorIs(t, err, assert.AnError)
	})
}
