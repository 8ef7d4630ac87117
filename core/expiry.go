package core

import (
	"sort"
	"time"
)

// ExpiringWithin returns the documents whose expiry date falls inside
// [now, now+window), soonest first. Documents without an expiry date,
// already-expired documents, and documents still being processed are
// excluded.
func ExpiringWithin(docs []*Document, now time.Time, window time.Duration) []*Document {
	deadline := now.Add(window)

	expiring := make([]*Document, 0)
	for _, doc := range docs {
		if doc == nil || doc.IsProcessing || !doc.Expires() {
			continue
		}
		if doc.Expiry.Before(now) || !doc.Expiry.Before(deadline) {
			continue
		}
		expiring = append(expiring, doc)
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].Expiry.Before(expiring[j].Expiry)
	})

	return expiring
}
