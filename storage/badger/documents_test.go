package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/storage"
)

func TestDocumentBasics(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	doc := &core.Document{
		Owner:       "John Doe",
		Type:        "Passport",
		Country:     "Denmark",
		FileName:    "passport.pdf",
		TextContent: "KINGDOM OF DENMARK PASSPORT",
		UploadedAt:  time.Now().UTC(),
	}

	added, err := repo.AddDocuments(ctx, doc)
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	if added[0].Id != core.IDFromContent(doc.TextContent) {
		t.Fatal("Expected content-based ID")
	}

	if added[0].InsertedAt.IsZero() || added[0].UpdatedAt.IsZero() {
		t.Fatal("Expected timestamps to be set")
	}

	retrieved, err := repo.GetDocument(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}

	if retrieved.Owner != "John Doe" {
		t.Fatalf("Expected 'John Doe', got '%s'", retrieved.Owner)
	}

	if retrieved.Type != "Passport" {
		t.Fatalf("Expected 'Passport', got '%s'", retrieved.Type)
	}
}

func TestDocumentPlaceholderID(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	// No text yet; ID must still be derivable and stable.
	doc := &core.Document{
		FileName:     "scan.pdf",
		IsProcessing: true,
		UploadedAt:   time.Now().UTC(),
	}

	added, err := repo.AddDocuments(ctx, doc)
	if err != nil {
		t.Fatalf("Failed to add placeholder: %v", err)
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID for placeholder")
	}

	retrieved, err := repo.GetDocument(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get placeholder: %v", err)
	}

	if !retrieved.IsProcessing {
		t.Fatal("Expected placeholder to still be processing")
	}
}

func TestDocumentSameContentReAdd(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	first := &core.Document{
		FileName:    "scan-1.pdf",
		TextContent: "same text",
		UploadedAt:  base,
	}
	added, err := repo.AddDocuments(ctx, first)
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}
	insertedAt := added[0].InsertedAt

	// Same text, different file name and upload time: same id, one record.
	second := &core.Document{
		FileName:    "scan-2.pdf",
		TextContent: "same text",
		UploadedAt:  base.Add(time.Hour),
	}
	readded, err := repo.AddDocuments(ctx, second)
	if err != nil {
		t.Fatalf("Failed to re-add document: %v", err)
	}

	if readded[0].Id != added[0].Id {
		t.Fatalf("Expected same id for same content, got %d and %d", added[0].Id, readded[0].Id)
	}

	if !readded[0].InsertedAt.Equal(insertedAt) {
		t.Fatal("Expected InsertedAt to be preserved across a re-add")
	}

	docs, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("Failed to list documents: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("Expected 1 document after re-add, got %d", len(docs))
	}
	if docs[0].FileName != "scan-2.pdf" {
		t.Fatalf("Expected re-add to update the record, got '%s'", docs[0].FileName)
	}

	// Deleting must leave no orphaned index entries behind.
	if err := repo.DeleteDocuments(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete document: %v", err)
	}
	docs, err = repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("Failed to list documents: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("Expected empty list after delete, got %d", len(docs))
	}
}

func TestDocumentUpdate(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	doc := &core.Document{
		Owner:       "John Doe",
		Type:        "Passport",
		FileName:    "passport.pdf",
		TextContent: "passport text",
		UploadedAt:  time.Now().UTC(),
	}

	added, err := repo.AddDocuments(ctx, doc)
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	insertedAt := added[0].InsertedAt

	added[0].Summary = "A passport."
	updated, err := repo.UpdateDocuments(ctx, added[0])
	if err != nil {
		t.Fatalf("Failed to update document: %v", err)
	}

	if !updated[0].InsertedAt.Equal(insertedAt) {
		t.Fatal("Expected InsertedAt to be preserved across updates")
	}

	retrieved, err := repo.GetDocument(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}

	if retrieved.Summary != "A passport." {
		t.Fatalf("Expected updated summary, got '%s'", retrieved.Summary)
	}

	// Updating a missing document must fail.
	missing := &core.Document{Id: 424242, FileName: "x.pdf"}
	if _, err := repo.UpdateDocuments(ctx, missing); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestDocumentDelete(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	doc := &core.Document{
		FileName:    "invoice.pdf",
		TextContent: "invoice text",
		UploadedAt:  time.Now().UTC(),
	}

	added, err := repo.AddDocuments(ctx, doc)
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	if err := repo.DeleteDocuments(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete document: %v", err)
	}

	if _, err := repo.GetDocument(ctx, added[0].Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	// The date index entry must be gone too.
	docs, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("Failed to list documents: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("Expected empty list after delete, got %d", len(docs))
	}

	if err := repo.DeleteDocuments(ctx, 424242); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for missing document, got %v", err)
	}
}

func TestDocumentList(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	base := time.Now().UTC().Add(-24 * time.Hour)

	for i := 0; i < 3; i++ {
		doc := &core.Document{
			FileName:    "doc.pdf",
			TextContent: string(rune('a' + i)),
			UploadedAt:  base.Add(time.Duration(i) * time.Hour),
		}
		if _, err := repo.AddDocuments(ctx, doc); err != nil {
			t.Fatalf("Failed to add document %d: %v", i, err)
		}
	}

	docs, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("Failed to list documents: %v", err)
	}

	if len(docs) != 3 {
		t.Fatalf("Expected 3 documents, got %d", len(docs))
	}

	// Newest first.
	for i := 1; i < len(docs); i++ {
		if docs[i].UploadedAt.After(docs[i-1].UploadedAt) {
			t.Fatal("Expected documents ordered newest first")
		}
	}
}

func TestDocumentDateRange(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		doc := &core.Document{
			FileName:    "doc.pdf",
			TextContent: string(rune('a' + i)),
			UploadedAt:  base.AddDate(0, 0, i),
		}
		if _, err := repo.AddDocuments(ctx, doc); err != nil {
			t.Fatalf("Failed to add document %d: %v", i, err)
		}
	}

	// Half-open interval: days 1 and 2, not day 3.
	docs, err := repo.GetDocumentsByDateRange(ctx, base.AddDate(0, 0, 1), base.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("Failed to query date range: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("Expected 2 documents in range, got %d", len(docs))
	}

	if _, err := repo.GetDocumentsByDateRange(ctx, base.AddDate(0, 0, 3), base); !errors.Is(err, storage.ErrInvalidQuery) {
		t.Fatalf("Expected ErrInvalidQuery for reversed range, got %v", err)
	}
}

func TestDocumentGetMany(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	a := &core.Document{FileName: "a.pdf", TextContent: "aaa", UploadedAt: time.Now().UTC()}
	b := &core.Document{FileName: "b.pdf", TextContent: "bbb", UploadedAt: time.Now().UTC()}
	if _, err := repo.AddDocuments(ctx, a, b); err != nil {
		t.Fatalf("Failed to add documents: %v", err)
	}

	// Missing ids are silently skipped.
	docs, err := repo.GetDocuments(ctx, a.Id, 424242, b.Id)
	if err != nil {
		t.Fatalf("Failed to get documents: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(docs))
	}
}
