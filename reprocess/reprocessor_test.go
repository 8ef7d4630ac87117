package reprocess

import (
	"bytes"
	"context"
	"errors"
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

func reprocessFixture(t *testing.T) storage.DocumentRepository {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func fastConfig() *Config {
	return &Config{
		ReportInterval: 1,
		MaxRetries:     3,
		RetryDelay:     time.Millisecond,
		OnlyPending:    true,
	}
}

func storeDocuments(t *testing.T, repo storage.DocumentRepository, docs ...*core.Document) []*core.Document {
	t.Helper()
	stored, err := repo.AddDocuments(context.Background(), docs...)
	require.NoError(t, err)
	return stored
}

func TestNewReprocessorValidation(t *testing.T) {
	repo := reprocessFixture(t)

	_, err := NewReprocessor(nil, mock.NewMockProvider(), nil, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewReprocessor(repo, nil, nil, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrAIProviderRequired)

	r, err := NewReprocessor(repo, mock.NewMockProvider(), nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().MaxRetries, r.config.MaxRetries)
}

func TestRunRecoversPendingDocuments(t *testing.T) {
	repo := reprocessFixture(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)
	provider.GetMockMetadata().ExtractMetadataFunc = func(ctx context.Context, text string) (ai.DocumentMetadata, error) {
		return ai.DocumentMetadata{Owner: "John Doe", Type: "Passport", Country: "Denmark"}, nil
	}
	provider.GetMockKeywords().ExtractKeywordsFunc = func(ctx context.Context, text string) ([]string, error) {
		return []string{"passport", "travel"}, nil
	}

	stored := storeDocuments(t, repo, &core.Document{
		FileName:     "scan-01.pdf",
		TextContent:  "passport of john doe",
		IsProcessing: true,
	})

	var out bytes.Buffer
	r, err := NewReprocessor(repo, provider, fastConfig(), &out)
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))

	doc, err := repo.GetDocument(context.Background(), stored[0].Id)
	require.NoError(t, err)
	assert.False(t, doc.IsProcessing)
	assert.Equal(t, "John Doe", doc.Owner)
	assert.Equal(t, "Passport", doc.Type)
	assert.Equal(t, "Denmark", doc.Country)
	assert.Equal(t, []string{"passport", "travel"}, doc.Keywords)
	assert.Contains(t, out.String(), "Reprocessing complete")
}

func TestRunOnlyPendingSkipsProcessedDocuments(t *testing.T) {
	repo := reprocessFixture(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)

	storeDocuments(t, repo,
		&core.Document{FileName: "a.pdf", TextContent: "pending text", IsProcessing: true},
		&core.Document{FileName: "b.pdf", TextContent: "done text", Owner: "Jane Smith", Type: "Invoice"},
	)

	var out bytes.Buffer
	r, err := NewReprocessor(repo, provider, fastConfig(), &out)
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 1, provider.GetMockMetadata().CallCount())
	assert.Equal(t, 1, provider.GetMockKeywords().CallCount())
}

func TestRunAllDocuments(t *testing.T) {
	repo := reprocessFixture(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)

	storeDocuments(t, repo,
		&core.Document{FileName: "a.pdf", TextContent: "pending text", IsProcessing: true},
		&core.Document{FileName: "b.pdf", TextContent: "done text", Owner: "Jane Smith", Type: "Invoice"},
	)

	config := fastConfig()
	config.OnlyPending = false

	var out bytes.Buffer
	r, err := NewReprocessor(repo, provider, config, &out)
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 2, provider.GetMockMetadata().CallCount())
}

func TestRunEmptyCollection(t *testing.T) {
	repo := reprocessFixture(t)

	var out bytes.Buffer
	r, err := NewReprocessor(repo, mock.NewMockProvider(), fastConfig(), &out)
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))

	assert.Contains(t, out.String(), "No documents to reprocess")
}

func TestRunExtractionKeepsFailingDocumentPending(t *testing.T) {
	repo := reprocessFixture(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)
	provider.GetMockMetadata().ExtractMetadataFunc = func(ctx context.Context, text string) (ai.DocumentMetadata, error) {
		return ai.DocumentMetadata{}, errors.New("model unavailable")
	}

	stored := storeDocuments(t, repo, &core.Document{
		FileName:     "a.pdf",
		TextContent:  "pending text",
		IsProcessing: true,
	})

	var out bytes.Buffer
	r, err := NewReprocessor(repo, provider, fastConfig(), &out)
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()), "per-document failures should not abort the run")

	assert.Equal(t, 3, provider.GetMockMetadata().CallCount(), "should exhaust all retries")

	doc, err := repo.GetDocument(context.Background(), stored[0].Id)
	require.NoError(t, err)
	assert.True(t, doc.IsProcessing, "failed document should stay pending")
	assert.Contains(t, out.String(), "failed to reprocess document")
}
