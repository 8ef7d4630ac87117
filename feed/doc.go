// Package feed keeps the in-memory document snapshot in sync with storage.
//
// A Feed loads the document list from the repository (newest upload first)
// and fans each refresh out to subscribers. Wiring the filter engine's
// SetDocuments as a subscriber keeps filtering, canonical vocabularies, and
// AI-search id resolution consistent with what is actually stored.
package feed
