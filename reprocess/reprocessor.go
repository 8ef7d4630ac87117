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


package reprocess

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/docdex/docdex/ai"
	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/storage"
)

// Config holds configuration for a reprocessing run.
type Config struct {
	// ReportInterval is how often to report progress (number of documents)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed extractions
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// OnlyPending limits the run to documents still waiting for metadata
	// extraction. When false every document is re-extracted from scratch.
	OnlyPending bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ReportInterval: 10,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
		OnlyPending:    true,
	}
}

// Reprocessor re-runs metadata and keyword extraction over stored documents.
// Its primary use is recovering documents left in the processing state after
// a failed extraction, but it can also rebuild all metadata after a model
// upgrade.
type Reprocessor struct {
	repository storage.DocumentRepository
	metadata   ai.MetadataExtractor
	keywords   ai.KeywordExtractor
	config     *Config
	progress   io.Writer
}

// NewReprocessor creates a new reprocessor.
// progress: where to write progress output (typically os.Stderr)
func NewReprocessor(repository storage.DocumentRepository, provider ai.Provider, config *Config, progress io.Writer) (*Reprocessor, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}

	return &Reprocessor{
		repository: repository,
		metadata:   provider.MetadataExtractor(),
		keywords:   provider.KeywordExtractor(),
		config:     config,
		progress:   progress,
	}, nil
}

// Run executes the reprocessing operation.
// Progress is reported to the configured writer. Documents whose extraction
// keeps failing after all retries stay in the processing state; their errors
// are reported but do not abort the run.
func (r *Reprocessor) Run(ctx context.Context) error {
	docs, err := r.repository.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	selected := docs[:0]
	for _, doc := range docs {
		if r.config.OnlyPending && !doc.IsProcessing {
			continue
		}
		selected = append(selected, doc)
	}

	total := len(selected)
	if total == 0 {
		fmt.Fprintf(r.progress, "No documents to reprocess (0 documents)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reprocessing of %d documents\n", total)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	failed := 0
	for _, doc := range selected {
		if err := r.reprocessDocument(ctx, doc); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failed++
			fmt.Fprintf(r.progress, "\nfailed to reprocess document %d (%s): %v\n", doc.Id, doc.FileName, err)
		}
		tracker.Increment(1)
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reprocessing complete. Processed %d documents in %v (%d failed)\n",
		total, elapsed.Round(time.Second), failed)

	return nil
}

// reprocessDocument extracts metadata and keywords for a single document and
// stores the result. Each extraction is retried with exponential backoff.
func (r *Reprocessor) reprocessDocument(ctx context.Context, doc *core.Document) error {
	var meta ai.DocumentMetadata
	err := RetryWithBackoff(ctx, func() error {
		var opErr error
		meta, opErr = r.metadata.ExtractMetadata(ctx, doc.TextContent)
		return opErr
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("metadata extraction: %w", err)
	}

	var keywords []string
	err = RetryWithBackoff(ctx, func() error {
		var opErr error
		keywords, opErr = r.keywords.ExtractKeywords(ctx, doc.TextContent)
		return opErr
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("keyword extraction: %w", err)
	}

	doc.Owner = meta.Owner
	doc.Type = meta.Type
	doc.Company = meta.Company
	doc.Country = meta.Country
	doc.Summary = meta.Summary
	doc.Expiry = meta.Expiry
	doc.Keywords = keywords
	doc.IsProcessing = false

	if _, err := r.repository.UpdateDocuments(ctx, doc); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	return nil
}
