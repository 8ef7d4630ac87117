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


package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/storage"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(backend *Backend) (*DocumentRepository, error) {
	return &DocumentRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *DocumentRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *DocumentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddDocuments adds one or more documents to storage.
func (r *DocumentRepository) AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, doc := range docs {
			if doc.UploadedAt.IsZero() {
				doc.UploadedAt = time.Now().UTC()
			}
			if doc.Id == 0 {
				doc.Id = deriveID(doc)
			}

			key := makeDocumentKey(doc.Id)
			now := time.Now().UTC()

			// Ids are content-derived, so adding the same text again hits
			// the same id. Treat that as an update of the existing record
			// and keep the date index at one entry per document.
			old, err := r.readDocument(tx, key)
			if err != nil {
				return err
			}
			if old != nil {
				doc.InsertedAt = old.InsertedAt
				if !old.UploadedAt.Equal(doc.UploadedAt) {
					if err := tx.Delete(makeDocumentDateKey(old.UploadedAt, old.Id)); err != nil {
						return err
					}
				}
			} else {
				doc.InsertedAt = now
			}
			doc.UpdatedAt = now

			if err := tx.Set(key, storage.MarshalDocument(doc)); err != nil {
				return err
			}

			dateKey := makeDocumentDateKey(doc.UploadedAt, doc.Id)
			if err := tx.Set(dateKey, storage.MarshalID(doc.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return docs, err
}

// UpdateDocuments updates existing documents.
func (r *DocumentRepository) UpdateDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, doc := range docs {
			key := makeDocumentKey(doc.Id)

			old, err := r.readDocument(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			doc.InsertedAt = old.InsertedAt
			doc.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalDocument(doc)); err != nil {
				return err
			}

			// Move the date index entry if the upload time changed.
			if !old.UploadedAt.Equal(doc.UploadedAt) {
				if err := tx.Delete(makeDocumentDateKey(old.UploadedAt, old.Id)); err != nil {
					return err
				}
				if err := tx.Set(makeDocumentDateKey(doc.UploadedAt, doc.Id), storage.MarshalID(doc.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return docs, err
}

// DeleteDocuments removes documents by their IDs.
func (r *DocumentRepository) DeleteDocuments(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeDocumentKey(id)

			doc, err := r.readDocument(tx, key)
			if err != nil {
				return err
			}
			if doc == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeDocumentDateKey(doc.UploadedAt, doc.Id)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetDocument retrieves a single document by ID.
func (r *DocumentRepository) GetDocument(ctx context.Context, id core.ID) (*core.Document, error) {
	var result *core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readDocument(tx, makeDocumentKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetDocuments retrieves multiple documents by their IDs.
func (r *DocumentRepository) GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error) {
	var result []*core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			doc, err := r.readDocument(tx, makeDocumentKey(id))
			if err != nil {
				return err
			}
			if doc != nil {
				result = append(result, doc)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListDocuments retrieves all documents newest first.
func (r *DocumentRepository) ListDocuments(ctx context.Context) ([]*core.Document, error) {
	var results []*core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Walk the date index in reverse so the newest upload comes first.
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		startKey := makePartialDocumentDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(documentDatePrefix + ":")

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			doc, err := r.readDocument(tx, makeDocumentKey(id))
			if err != nil {
				return err
			}
			if doc != nil {
				results = append(results, doc)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetDocumentsByDateRange retrieves documents within an upload time range.
func (r *DocumentRepository) GetDocumentsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Document, error) {
	if end.Before(start) {
		return nil, storage.ErrInvalidQuery
	}
	if start.Equal(end) {
		end = start.Add(1 * time.Microsecond)
	}

	var results []*core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialDocumentDateKey(start)
		endKey := makePartialDocumentDateKey(end)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if slices.Compare(key, endKey) >= 0 {
				break
			}

			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			doc, err := r.readDocument(tx, makeDocumentKey(id))
			if err != nil {
				return err
			}
			if doc != nil {
				results = append(results, doc)
			}
		}
		return nil
	}, false)

	return results, err
}

// readDocument reads and unmarshals a document, returning nil if missing.
func (r *DocumentRepository) readDocument(tx *badger.Txn, key []byte) (*core.Document, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc *core.Document
	err = item.Value(func(val []byte) error {
		var err error
		doc, err = storage.UnmarshalDocument(val)
		return err
	})
	return doc, err
}

// deriveID computes a content-based ID. Two uploads with the same recognized
// text are the same document regardless of file name, which dedupes repeat
// scans; AddDocuments turns such a re-add into an update. Documents still
// waiting on text extraction key off the file name and upload time instead.
func deriveID(doc *core.Document) core.ID {
	if doc.TextContent != "" {
		return core.IDFromContent(doc.TextContent)
	}
	return core.IDFromContent(doc.FileName + doc.UploadedAt.UTC().Format(time.RFC3339Nano))
}
