package ai

import "context"

// DocumentMatcher answers natural-language questions against a collection of
// document projections. Implementations must be thread-safe for concurrent use.
type DocumentMatcher interface {
	// MatchDocuments selects the documents relevant to the query from the
	// given projections and returns their ids as decimal strings, most
	// relevant first. An empty slice means the model judged nothing
	// relevant; that is a valid answer, not an error.
	// Returns an error if the model call or response parsing fails.
	MatchDocuments(ctx context.Context, query string, docs []DocumentProjection) ([]string, error)
}

// CriteriaExtractor turns a natural-language query into structured search
// criteria that can be matched locally without a second model round-trip.
// Implementations must be thread-safe for concurrent use.
type CriteriaExtractor interface {
	// ExtractCriteria analyzes the query and pulls out the owner, document
	// type, country, and free keywords it mentions. Fields the query does
	// not constrain are left empty.
	// Returns an error if extraction fails.
	ExtractCriteria(ctx context.Context, query string) (SearchCriteria, error)
}

// MetadataExtractor derives structured metadata from raw document text
// during ingestion. Implementations must be thread-safe for concurrent use.
type MetadataExtractor interface {
	// ExtractMetadata reads the document text and returns the owner, type,
	// company, country, expiry date, and a short summary it can infer.
	// Returns an error if the model call or response parsing fails.
	ExtractMetadata(ctx context.Context, text string) (DocumentMetadata, error)
}

// KeywordExtractor produces retrieval keywords for a document.
// Implementations must be thread-safe for concurrent use.
type KeywordExtractor interface {
	// ExtractKeywords returns up to a handful of lowercase keywords that
	// describe the document text. Returns an empty slice when the text
	// yields nothing useful.
	ExtractKeywords(ctx context.Context, text string) ([]string, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages the matcher and
// extractor instances, ensuring they share configuration and resources.
type Provider interface {
	// DocumentMatcher returns the intelligent-search service.
	// The returned DocumentMatcher is safe for concurrent use.
	DocumentMatcher() DocumentMatcher

	// CriteriaExtractor returns the query criteria extraction service.
	// The returned CriteriaExtractor is safe for concurrent use.
	CriteriaExtractor() CriteriaExtractor

	// MetadataExtractor returns the ingestion metadata service.
	// The returned MetadataExtractor is safe for concurrent use.
	MetadataExtractor() MetadataExtractor

	// KeywordExtractor returns the keyword generation service.
	// The returned KeywordExtractor is safe for concurrent use.
	KeywordExtractor() KeywordExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
