package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docdex/docdex/ai"
	"github.com/docdex/docdex/ai/mock"
	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/storage"
	"github.com/docdex/docdex/storage/badger"
)

func pipelineFixture(t *testing.T, provider ai.Provider) (*Pipeline, storage.DocumentRepository, chan core.ID) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	processed := make(chan core.ID, 8)
	pipeline, err := NewPipeline(repo, provider,
		WithPoolSize(1),
		WithProcessedHook(func(id core.ID) { processed <- id }),
	)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	return pipeline, repo, processed
}

func waitProcessed(t *testing.T, processed chan core.ID) core.ID {
	t.Helper()
	select {
	case id := <-processed:
		return id
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for processing")
		return 0
	}
}

func TestNewPipeline(t *testing.T) {
	t.Run("requires a repository", func(t *testing.T) {
		_, err := NewPipeline(nil, mock.NewMockProvider())
		assert.ErrorIs(t, err, ErrRepositoryRequired)
	})

	t.Run("requires a provider", func(t *testing.T) {
		repo, backend, err := badger.NewMemoryRepository()
		require.NoError(t, err)
		defer func() {
			repo.Close()
			backend.Close()
		}()

		_, err = NewPipeline(repo, nil)
		assert.ErrorIs(t, err, ErrAIProviderRequired)
	})
}

func TestSubmitValidation(t *testing.T) {
	pipeline, _, _ := pipelineFixture(t, mock.NewMockProvider())
	ctx := context.Background()

	t.Run("empty file name", func(t *testing.T) {
		_, err := pipeline.Submit(ctx, "  ", "some text", time.Time{})
		assert.ErrorIs(t, err, ErrEmptyFileName)
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := pipeline.Submit(ctx, "doc.pdf", "   ", time.Time{})
		assert.ErrorIs(t, err, ErrEmptyText)
	})
}

func TestSubmitStoresPlaceholder(t *testing.T) {
	pipeline, _, processed := pipelineFixture(t, mock.NewMockProvider())
	ctx := context.Background()

	doc, err := pipeline.Submit(ctx, "passport.pdf", "KINGDOM OF DENMARK PASSPORT", time.Time{})
	require.NoError(t, err)

	assert.NotZero(t, doc.Id)
	assert.True(t, doc.IsProcessing)
	assert.False(t, doc.UploadedAt.IsZero())

	waitProcessed(t, processed)
}

func TestSubmitExtractsMetadataAndKeywords(t *testing.T) {
	provider := mock.NewMockProvider().(*mock.MockProvider)
	provider.GetMockMetadata().ExtractMetadataFunc = func(_ context.Context, _ string) (ai.DocumentMetadata, error) {
		return ai.DocumentMetadata{
			Owner:   "John Doe",
			Type:    "Passport",
			Country: "Denmark",
			Summary: "A Danish passport.",
			Expiry:  time.Date(2031, 6, 1, 0, 0, 0, 0, time.UTC),
		}, nil
	}
	provider.GetMockKeywords().ExtractKeywordsFunc = func(_ context.Context, _ string) ([]string, error) {
		return []string{"passport", "travel"}, nil
	}

	pipeline, repo, processed := pipelineFixture(t, provider)
	ctx := context.Background()

	doc, err := pipeline.Submit(ctx, "passport.pdf", "KINGDOM OF DENMARK PASSPORT", time.Time{})
	require.NoError(t, err)

	id := waitProcessed(t, processed)
	assert.Equal(t, doc.Id, id)

	stored, err := repo.GetDocument(ctx, doc.Id)
	require.NoError(t, err)
	assert.False(t, stored.IsProcessing)
	assert.Equal(t, "John Doe", stored.Owner)
	assert.Equal(t, "Passport", stored.Type)
	assert.Equal(t, "Denmark", stored.Country)
	assert.Equal(t, []string{"passport", "travel"}, stored.Keywords)
	assert.False(t, stored.Expiry.IsZero())
}

func TestSubmitMetadataFailureKeepsProcessingFlag(t *testing.T) {
	provider := mock.NewMockProvider().(*mock.MockProvider)
	provider.GetMockMetadata().ExtractMetadataFunc = func(_ context.Context, _ string) (ai.DocumentMetadata, error) {
		return ai.DocumentMetadata{}, assert.AnError
	}

	pipeline, repo, processed := pipelineFixture(t, provider)
	ctx := context.Background()

	doc, err := pipeline.Submit(ctx, "broken.pdf", "unreadable scan", time.Time{})
	require.NoError(t, err)

	waitProcessed(t, processed)

	stored, err := repo.GetDocument(ctx, doc.Id)
	require.NoError(t, err)
	// Still processing, so search and filters keep ignoring it.
	assert.True(t, stored.IsProcessing)
}

func TestMergeKeywords(t *testing.T) {
	merged := mergeKeywords([]string{"passport", "travel"}, []string{"travel", "denmark"})
	assert.Equal(t, []string{"passport", "travel", "denmark"}, merged)

	assert.Empty(t, mergeKeywords(nil, nil))
}
