// Package reprocess provides batch re-extraction of document metadata and
// keywords.
//
// Its main job is recovering documents that stayed in the processing state
// after a failed extraction, but a run can also rebuild the metadata of the
// whole collection after a model change. The package includes progress
// tracking and retry logic with exponential backoff.
package reprocess
