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


package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/storage"
)

// Feed maintains the current document snapshot and fans it out to
// subscribers whenever it is refreshed from storage. The filter engine is
// the primary subscriber; the dashboard chart is another.
type Feed struct {
	repository storage.DocumentRepository
	logger     *slog.Logger

	mu          sync.RWMutex
	snapshot    []*core.Document
	subscribers []func([]*core.Document)
}

// Option configures a Feed.
type Option func(*Feed) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Feed) error {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
		return nil
	}
}

// NewFeed creates a feed over the given repository.
func NewFeed(repository storage.DocumentRepository, opts ...Option) (*Feed, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	f := &Feed{
		repository: repository,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Subscribe registers a callback invoked with the new snapshot after every
// refresh. Callbacks run synchronously on the refreshing goroutine, in
// subscription order.
func (f *Feed) Subscribe(fn func([]*core.Document)) {
	if fn == nil {
		return
	}
	f.mu.Lock()
	f.subscribers = append(f.subscribers, fn)
	f.mu.Unlock()
}

// Refresh reloads the snapshot from storage, newest upload first, and
// notifies subscribers.
func (f *Feed) Refresh(ctx context.Context) ([]*core.Document, error) {
	docs, err := f.repository.ListDocuments(ctx)
	if err != nil {
		f.logger.Error("failed to refresh feed", "err", err)
		return nil, err
	}

	f.mu.Lock()
	f.snapshot = docs
	subscribers := make([]func([]*core.Document), len(f.subscribers))
	copy(subscribers, f.subscribers)
	f.mu.Unlock()

	for _, fn := range subscribers {
		fn(docs)
	}

	f.logger.Debug("feed refreshed", "documents", len(docs))
	return docs, nil
}

// Snapshot returns the documents from the last refresh.
func (f *Feed) Snapshot() []*core.Document {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*core.Document, len(f.snapshot))
	copy(out, f.snapshot)
	return out
}

// ExpiringWithin returns the snapshot documents expiring inside the window,
// soonest first. Used for the expiry notice strip on the dashboard.
func (f *Feed) ExpiringWithin(now time.Time, window time.Duration) []*core.Document {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return core.ExpiringWithin(f.snapshot, now, window)
}
