package storage

import (
	"context"
	"time"

	"github.com/docdex/docdex/core"
)

// DocumentRepository provides operations for managing stored documents.
// Implementations must be thread-safe and support concurrent access.
type DocumentRepository interface {
	// AddDocuments adds one or more documents to storage.
	// For documents with Id=0, derives a content-based ID from the text.
	// Sets InsertedAt and UpdatedAt timestamps.
	// Returns the documents with IDs and timestamps populated.
	AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// UpdateDocuments updates existing documents.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any document doesn't exist.
	UpdateDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their IDs.
	// Returns only the documents that exist (no error for missing documents).
	GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error)

	// ListDocuments retrieves all documents ordered by upload time
	// descending, newest first. This is the feed order.
	ListDocuments(ctx context.Context) ([]*core.Document, error)

	// GetDocumentsByDateRange retrieves documents within an upload time range.
	// Returns documents where start <= UploadedAt < end, oldest first.
	GetDocumentsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Document, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}
