// Package ingest provides pipeline orchestration for adding documents.
//
// The Pipeline type manages the ingestion workflow for documents, including:
//   - Storing a placeholder record so the feed shows the upload immediately
//   - Inferring metadata (owner, type, company, country, expiry, summary)
//     asynchronously
//   - Generating retrieval keywords asynchronously
//
// Processing is performed on a worker pool. Errors during async processing
// are logged but do not fail the submission; the document simply stays in
// the processing state until a reprocess run succeeds.
package ingest
