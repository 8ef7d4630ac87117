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


package docdex

import (
	"io"
	"log/slog"

	"github.com/docdex/docdex/ai"
	"github.com/docdex/docdex/ai/openai"
	"github.com/docdex/docdex/feed"
	"github.com/docdex/docdex/filter"
	"github.com/docdex/docdex/fuzzy"
	"github.com/docdex/docdex/ingest"
	"github.com/docdex/docdex/reprocess"
	"github.com/docdex/docdex/search"
	"github.com/docdex/docdex/storage"
	"github.com/docdex/docdex/storage/badger"
)

type Database struct {
	backend  *badger.Backend
	docRepo  storage.DocumentRepository
	provider ai.Provider
	logger   *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	inMemory bool
}

// WithAIConfig sets the configuration used to build the AI provider.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider injects a pre-built AI provider instead of constructing one
// from configuration. Useful for tests.
func WithAIProvider(provider ai.Provider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithInMemory keeps the whole database in memory; filePath is ignored.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}
	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create document repository
	docRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			docRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:  backend,
		docRepo:  docRepo,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repository
	if err := db.docRepo.Close(); err != nil {
		db.logger.Error("error closing document repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) DocumentRepository() storage.DocumentRepository {
	return db.docRepo
}

func (db *Database) AIProvider() ai.Provider {
	return db.provider
}

func (db *Database) NewIngestPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(db.docRepo, db.provider, opts...)
}

func (db *Database) NewFeed(opts ...feed.Option) (*feed.Feed, error) {
	return feed.NewFeed(db.docRepo, opts...)
}

func (db *Database) NewFilterEngine(opts ...filter.Option) (*filter.Engine, error) {
	return filter.NewEngine(opts...)
}

// NewDirectStrategy builds the single-call intelligent search strategy,
// wrapped with retries and a circuit breaker around the model call.
func (db *Database) NewDirectStrategy(opts ...search.Option) (search.Strategy, error) {
	strategy, err := search.NewDirectMatch(db.provider.DocumentMatcher(), opts...)
	if err != nil {
		return nil, err
	}
	return search.NewResilient(strategy, search.ResilienceConfig{}, opts...)
}

// NewCriteriaStrategy builds the criteria-extraction search strategy, which
// matches locally after a single structured model call. Like the direct
// strategy, the model call runs behind retries and a circuit breaker.
func (db *Database) NewCriteriaStrategy(opts ...search.Option) (search.Strategy, error) {
	strategy, err := search.NewCriteriaExtraction(db.provider.CriteriaExtractor(), fuzzy.NewMatcher(), opts...)
	if err != nil {
		return nil, err
	}
	return search.NewResilient(strategy, search.ResilienceConfig{}, opts...)
}

func (db *Database) NewSearchRunner(engine *filter.Engine, strategy search.Strategy, opts ...search.Option) (*search.Runner, error) {
	return search.NewRunner(engine, strategy, opts...)
}

// NewReprocessor builds a batch re-extraction runner over this database.
// progress: where to write progress output (typically os.Stderr)
func (db *Database) NewReprocessor(config *reprocess.Config, progress io.Writer) (*reprocess.Reprocessor, error) {
	return reprocess.NewReprocessor(db.docRepo, db.provider, config, progress)
}
