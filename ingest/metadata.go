package ingest

import (
	"context"
	"log/slog"

	"github.com/docdex/docdex/ai"
	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/storage"
)

// metadataProcessor infers document metadata from the stored text and clears
// the processing flag once the document is searchable.
type metadataProcessor struct {
	repository storage.DocumentRepository
	extractor  ai.MetadataExtractor
	logger     *slog.Logger
}

func newMetadataProcessor(repository storage.DocumentRepository, extractor ai.MetadataExtractor, logger *slog.Logger) (*metadataProcessor, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if extractor == nil {
		return nil, ErrAIProviderRequired
	}
	return &metadataProcessor{
		repository: repository,
		extractor:  extractor,
		logger:     logger.With("processor", "metadata"),
	}, nil
}

func (p *metadataProcessor) process(ctx context.Context, ids ...core.ID) error {
	docs, err := p.repository.GetDocuments(ctx, ids...)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		meta, err := p.extractor.ExtractMetadata(ctx, doc.TextContent)
		if err != nil {
			// Leave the document in the processing state; a later reprocess
			// run can pick it up.
			p.logger.Error("metadata extraction failed", "id", doc.Id, "err", err)
			continue
		}

		doc.Owner = meta.Owner
		doc.Type = meta.Type
		doc.Company = meta.Company
		doc.Country = meta.Country
		doc.Summary = meta.Summary
		doc.Expiry = meta.Expiry
		doc.IsProcessing = false

		if _, err := p.repository.UpdateDocuments(ctx, doc); err != nil {
			p.logger.Error("failed to store extracted metadata", "id", doc.Id, "err", err)
			continue
		}
		p.logger.Debug("metadata extracted", "id", doc.Id, "type", doc.Type)
	}
	return nil
}
