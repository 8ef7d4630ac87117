package fuzzy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/docdex/docdex/core"
)

// EditMatcher implements Matcher using Wagner-Fischer edit distance over
// normalized text. Matching is location-insensitive: the query is compared
// against the whole candidate and against every window of adjacent tokens,
// and the best window wins.
type EditMatcher struct{}

var _ Matcher = (*EditMatcher)(nil)

// NewMatcher creates the default edit-distance matcher.
func NewMatcher() *EditMatcher {
	return &EditMatcher{}
}

// Distance returns the normalized dissimilarity between query and candidate.
func (m *EditMatcher) Distance(query, candidate string) float64 {
	q := normalize(query)
	c := normalize(candidate)

	if q == "" || c == "" {
		if q == c {
			return 0
		}
		return 1
	}
	if q == c {
		return 0
	}

	best := normalizedEditDistance(q, c)

	tokens := strings.Fields(c)
	// A window never needs more tokens than the query has, plus one for
	// partially typed boundaries.
	maxRun := len(strings.Fields(q)) + 1

	for i := range tokens {
		for j := i; j < len(tokens) && j-i < maxRun; j++ {
			window := strings.Join(tokens[i:j+1], " ")
			if d := normalizedEditDistance(q, window); d < best {
				best = d
			}
		}
		// Compare against the token prefix of query length, so a partially
		// typed value ("pass") still matches its completion ("passport").
		if len(tokens[i]) > len(q) {
			if d := prefixDistance(q, tokens[i]); d < best {
				best = d
			}
		}
	}

	return best
}

// SearchStrings returns the candidates within threshold, best first.
// An empty query matches nothing.
func (m *EditMatcher) SearchStrings(query string, candidates []string, threshold float64) []StringMatch {
	checkThreshold(threshold)

	if normalize(query) == "" {
		return nil
	}

	matches := make([]StringMatch, 0, len(candidates))
	for i, candidate := range candidates {
		score := m.Distance(query, candidate)
		if score > threshold {
			continue
		}
		matches = append(matches, StringMatch{Value: candidate, Index: i, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})

	return matches
}

// SearchDocuments scores each document by its best field and returns the
// ones within threshold, best first. Ties keep the original document order.
func (m *EditMatcher) SearchDocuments(query string, docs []*core.Document, keys []Key, threshold float64) []DocumentMatch {
	checkThreshold(threshold)

	if normalize(query) == "" {
		return nil
	}

	matches := make([]DocumentMatch, 0, len(docs))
	for _, doc := range docs {
		if doc == nil || doc.IsProcessing {
			continue
		}

		best := -1.0
		for _, key := range keys {
			for _, value := range key(doc) {
				d := m.Distance(query, value)
				if best < 0 || d < best {
					best = d
				}
			}
		}
		if best < 0 || best > threshold {
			continue
		}
		matches = append(matches, DocumentMatch{Document: doc, Score: best})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})

	return matches
}

// normalize lowercases and collapses whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// normalizedEditDistance scales the Wagner-Fischer distance by the longer
// input, yielding a score in [0,1].
func normalizedEditDistance(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return float64(smetrics.WagnerFischer(a, b, 1, 1, 1)) / float64(longest)
}

// prefixDistance scores query against the prefix of a longer token. The
// unmatched suffix counts at half weight, so a prefix hit ranks behind an
// exact match but ahead of an unrelated value.
func prefixDistance(query, token string) float64 {
	edits := float64(smetrics.WagnerFischer(query, token[:len(query)], 1, 1, 1))
	suffix := float64(len(token) - len(query))
	return (edits + 0.5*suffix) / float64(len(token))
}

func checkThreshold(threshold float64) {
	if threshold < 0 {
		panic(fmt.Sprintf("fuzzy: negative threshold %v", threshold))
	}
}
