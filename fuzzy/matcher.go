package fuzzy

import (
	"github.com/docdex/docdex/core"
)

// Threshold policy shared by the discovery subsystem. Scores are normalized
// dissimilarity, so a tighter threshold admits fewer matches.
const (
	// ThresholdIdentity is used for "same real-world entity" checks:
	// canonical-value deduplication and matching a document's raw field
	// value against selected filter values.
	ThresholdIdentity = 0.2

	// ThresholdOptions is used when narrowing a visible options list as the
	// user types into a sub-search box.
	ThresholdOptions = 0.3

	// ThresholdExploratory is used for full-document search, favoring
	// recall over precision.
	ThresholdExploratory = 0.4
)

// StringMatch is a scored candidate from a plain string search.
type StringMatch struct {
	Value string
	Index int // Position in the original candidate slice
	Score float64
}

// DocumentMatch is a scored document from a multi-field search.
type DocumentMatch struct {
	Document *core.Document
	Score    float64
}

// Key extracts zero or more searchable string values from a document.
// A missing field yields no values and simply does not match.
type Key func(*core.Document) []string

// Field accessors for the standard search surface.
var (
	KeyOwner Key = func(d *core.Document) []string { return one(d.Owner) }
	KeyCompany Key = func(d *core.Document) []string { return one(d.Company) }
	KeyType Key = func(d *core.Document) []string { return one(d.Type) }
	KeyCountry Key = func(d *core.Document) []string { return one(d.Country) }
	KeySummary Key = func(d *core.Document) []string { return one(d.Summary) }
	KeyTextContent Key = func(d *core.Document) []string { return one(d.TextContent) }
	KeyKeywords Key = func(d *core.Document) []string { return d.Keywords }
)

// DocumentKeys returns the full-document search surface: owner, company,
// type, keywords, summary, text content, and country.
func DocumentKeys() []Key {
	return []Key{KeyOwner, KeyCompany, KeyType, KeyKeywords, KeySummary, KeyTextContent, KeyCountry}
}

func one(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

// Matcher scores approximate string matches. Implementations must treat a
// negative threshold as a programmer error and fail fast.
type Matcher interface {
	// Distance returns the normalized dissimilarity between query and
	// candidate in [0,1]; lower is better, 0 is an exact match.
	Distance(query, candidate string) float64

	// SearchStrings returns the candidates whose distance to query does not
	// exceed threshold, best first, with ties kept in candidate order.
	SearchStrings(query string, candidates []string, threshold float64) []StringMatch

	// SearchDocuments scores each document by the best distance achieved
	// across the configured keys; a hit in any field qualifies the whole
	// record. Documents still being processed are skipped.
	SearchDocuments(query string, docs []*core.Document, keys []Key, threshold float64) []DocumentMatch
}
