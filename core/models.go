package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// FilterCategory identifies a document field that can be used as a
// categorical filter dimension.
type FilterCategory int

const (
	// CategoryOwner filters by the primary person/company name.
	CategoryOwner FilterCategory = iota + 1
	// CategoryType filters by document category (passport, invoice, ...).
	CategoryType
	// CategoryCompany filters by the issuing or related company.
	CategoryCompany
	// CategoryCountry filters by the country the document relates to.
	CategoryCountry
)

// Categories lists all filter categories in display order.
var Categories = []FilterCategory{CategoryOwner, CategoryType, CategoryCompany, CategoryCountry}

// String returns the lowercase name of the category.
func (c FilterCategory) String() string {
	switch c {
	case CategoryOwner:
		return "owner"
	case CategoryType:
		return "type"
	case CategoryCompany:
		return "company"
	case CategoryCountry:
		return "country"
	}
	return "unknown"
}

// Document represents a single scanned document with its extracted metadata.
// Fields other than Id, FileName, TextContent and the timestamps are populated
// by the metadata extraction pipeline; while IsProcessing is true they hold
// placeholder values and must not participate in search matching.
type Document struct {
	Id           ID
	Owner        string    // Primary person/company name; required once processed
	Company      string    // Optional; empty means absent
	Type         string    // Document category as a display string
	Country      string    // Optional; empty means absent
	Keywords     []string  // Search keywords; insertion order irrelevant
	Summary      string    // Short extracted summary; optional
	TextContent  string    // Full recognized text
	FileName     string    // Original upload file name
	Expiry       time.Time // Zero when the document does not expire
	UploadedAt   time.Time // Drives default newest-first ordering
	InsertedAt   time.Time // When the record was inserted into the database
	UpdatedAt    time.Time // When the record was last updated
	IsProcessing bool      // True until metadata extraction completes
}

// FieldValue returns the document's raw value for a filter category.
// An empty string means the field is absent.
func (d *Document) FieldValue(category FilterCategory) string {
	switch category {
	case CategoryOwner:
		return d.Owner
	case CategoryType:
		return d.Type
	case CategoryCompany:
		return d.Company
	case CategoryCountry:
		return d.Country
	}
	return ""
}

// Expires reports whether the document carries an expiry date.
func (d *Document) Expires() bool {
	return !d.Expiry.IsZero()
}
