package ingest

import (
	"context"
	"log/slog"

	"github.com/docdex/docdex/ai"
	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/storage"
)

// keywordProcessor generates retrieval keywords and merges them with any the
// document already carries.
type keywordProcessor struct {
	repository storage.DocumentRepository
	extractor  ai.KeywordExtractor
	logger     *slog.Logger
}

func newKeywordProcessor(repository storage.DocumentRepository, extractor ai.KeywordExtractor, logger *slog.Logger) (*keywordProcessor, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if extractor == nil {
		return nil, ErrAIProviderRequired
	}
	return &keywordProcessor{
		repository: repository,
		extractor:  extractor,
		logger:     logger.With("processor", "keywords"),
	}, nil
}

func (p *keywordProcessor) process(ctx context.Context, ids ...core.ID) error {
	docs, err := p.repository.GetDocuments(ctx, ids...)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		keywords, err := p.extractor.ExtractKeywords(ctx, doc.TextContent)
		if err != nil {
			p.logger.Error("keyword extraction failed", "id", doc.Id, "err", err)
			continue
		}
		if len(keywords) == 0 {
			continue
		}

		doc.Keywords = mergeKeywords(doc.Keywords, keywords)

		if _, err := p.repository.UpdateDocuments(ctx, doc); err != nil {
			p.logger.Error("failed to store keywords", "id", doc.Id, "err", err)
			continue
		}
		p.logger.Debug("keywords extracted", "id", doc.Id, "count", len(keywords))
	}
	return nil
}

// mergeKeywords appends new keywords to existing ones, preserving order and
// dropping duplicates.
func mergeKeywords(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, lists := range [][]string{existing, incoming} {
		for _, keyword := range lists {
			if _, dup := seen[keyword]; dup {
				continue
			}
			seen[keyword] = struct{}{}
			merged = append(merged, keyword)
		}
	}
	return merged
}
