// Copyright 2025 Docdex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingest

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/docdex/docdex/ai"
	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/storage"
)

// Pipeline orchestrates document ingestion. A submission stores a
// placeholder immediately so the feed can show the document, then metadata
// and keyword extraction run asynchronously on a worker pool. The document
// stays flagged as processing, and therefore out of search, until metadata
// extraction succeeds.
type Pipeline struct {
	repository   storage.DocumentRepository
	pool         *ants.Pool
	metadataProc processor
	keywordProc  processor
	onProcessed  func(core.ID)
	logger       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithProcessedHook registers a callback invoked after a submission has
// finished async processing, successfully or not. Callers typically refresh
// the feed from it.
func WithProcessedHook(fn func(core.ID)) Option {
	return func(p *Pipeline) error {
		p.onProcessed = fn
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	repository storage.DocumentRepository,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		pool:       pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	metadataProc, err := newMetadataProcessor(repository, provider.MetadataExtractor(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}

	keywordProc, err := newKeywordProcessor(repository, provider.KeywordExtractor(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}

	p.metadataProc = metadataProc
	p.keywordProc = keywordProc

	return p, nil
}

// Submit stores a document placeholder and queues it for extraction.
// The returned document carries the assigned ID and the processing flag;
// extraction errors are logged, not returned.
func (p *Pipeline) Submit(ctx context.Context, fileName, text string, uploadedAt time.Time) (*core.Document, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, ErrEmptyFileName
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if uploadedAt.IsZero() {
		uploadedAt = time.Now().UTC()
	}

	doc := &core.Document{
		FileName:     fileName,
		TextContent:  text,
		UploadedAt:   uploadedAt,
		IsProcessing: true,
	}

	added, err := p.repository.AddDocuments(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc = added[0]
	id := doc.Id

	// Metadata and keywords run sequentially in one task so the two
	// updates cannot race on the same record.
	err = p.pool.Submit(func() {
		ctx := context.Background()
		if err := p.metadataProc.process(ctx, id); err != nil {
			p.logger.Error("error processing metadata", "id", id, "err", err)
		}
		if err := p.keywordProc.process(ctx, id); err != nil {
			p.logger.Error("error processing keywords", "id", id, "err", err)
		}
		if p.onProcessed != nil {
			p.onProcessed(id)
		}
	})
	if err != nil {
		p.logger.Error("failed to queue extraction", "id", id, "err", err)
	}

	p.logger.Info("document submitted", "id", id, "file", fileName)
	return doc, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
