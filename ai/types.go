package ai

import (
	"strconv"
	"time"

	"github.com/docdex/docdex/core"
)

// DocumentProjection is the reduced view of a document that is safe and
// cheap to hand to a language model: identifying metadata plus the summary,
// never the full text.
type DocumentProjection struct {
	ID       string   `json:"id"`
	Owner    string   `json:"owner,omitempty"`
	Type     string   `json:"type,omitempty"`
	Company  string   `json:"company,omitempty"`
	Country  string   `json:"country,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// ProjectDocument builds the model-facing projection of a document.
func ProjectDocument(doc *core.Document) DocumentProjection {
	return DocumentProjection{
		ID:       strconv.FormatUint(uint64(doc.Id), 10),
		Owner:    doc.Owner,
		Type:     doc.Type,
		Company:  doc.Company,
		Country:  doc.Country,
		Summary:  doc.Summary,
		Keywords: doc.Keywords,
	}
}

// ProjectDocuments projects a document list, skipping entries still being
// processed since they have no metadata worth showing the model.
func ProjectDocuments(docs []*core.Document) []DocumentProjection {
	out := make([]DocumentProjection, 0, len(docs))
	for _, doc := range docs {
		if doc == nil || doc.IsProcessing {
			continue
		}
		out = append(out, ProjectDocument(doc))
	}
	return out
}

// SearchCriteria is the structured form of a natural-language query.
// Empty fields mean the query did not constrain them.
type SearchCriteria struct {
	Owner        string   `json:"owner,omitempty"`
	DocumentType string   `json:"document_type,omitempty"`
	Country      string   `json:"country,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
}

// Empty reports whether the extraction produced no usable criteria.
func (c SearchCriteria) Empty() bool {
	return c.Owner == "" && c.DocumentType == "" && c.Country == "" && len(c.Keywords) == 0
}

// DocumentMetadata is what ingestion-time extraction infers from raw
// document text.
type DocumentMetadata struct {
	Owner   string `json:"owner,omitempty"`
	Type    string `json:"document_type,omitempty"`
	Company string `json:"company,omitempty"`
	Country string `json:"country,omitempty"`
	Summary string `json:"summary,omitempty"`

	// Expiry is the document's expiration date, zero when none was found.
	Expiry time.Time `json:"-"`
}
