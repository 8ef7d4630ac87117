package canon

import (
	"sort"

	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/fuzzy"
)

// Vocabulary holds one canonical-value registry per filter category,
// folded from a document collection in order. Canonical labels are derived
// greedily from that order; rebuilding from a reordered collection can pick
// different (still internally consistent) labels.
type Vocabulary struct {
	registries map[core.FilterCategory]*Registry
	matcher    fuzzy.Matcher
}

// BuildVocabulary folds every document's raw field values through a fresh
// set of registries. Empty fields and documents still being processed carry
// no usable metadata and are skipped.
func BuildVocabulary(docs []*core.Document, matcher fuzzy.Matcher) *Vocabulary {
	if matcher == nil {
		matcher = fuzzy.NewMatcher()
	}

	v := &Vocabulary{
		registries: make(map[core.FilterCategory]*Registry, len(core.Categories)),
		matcher:    matcher,
	}
	for _, category := range core.Categories {
		v.registries[category] = NewRegistry(matcher)
	}

	for _, doc := range docs {
		if doc == nil || doc.IsProcessing {
			continue
		}
		for _, category := range core.Categories {
			raw := doc.FieldValue(category)
			if raw == "" {
				continue
			}
			v.registries[category].Resolve(raw)
		}
	}

	return v
}

// Registry returns the registry for a category, or nil for an unknown one.
func (v *Vocabulary) Registry(category core.FilterCategory) *Registry {
	return v.registries[category]
}

// Canonical maps a raw field value onto its canonical bucket without
// modifying the vocabulary.
func (v *Vocabulary) Canonical(category core.FilterCategory, raw string) string {
	reg := v.registries[category]
	if reg == nil {
		return raw
	}
	return reg.Lookup(raw)
}

// Options returns the canonical values of a category sorted for display.
func (v *Vocabulary) Options(category core.FilterCategory) []string {
	reg := v.registries[category]
	if reg == nil {
		return nil
	}
	options := reg.Values()
	sort.Strings(options)
	return options
}

// FilterOptions narrows a category's display options as the user types into
// a sub-search box. An empty query returns all options.
func (v *Vocabulary) FilterOptions(category core.FilterCategory, query string) []string {
	options := v.Options(category)
	if query == "" || len(options) == 0 {
		return options
	}

	matches := v.matcher.SearchStrings(query, options, fuzzy.ThresholdOptions)
	filtered := make([]string, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, match.Value)
	}
	return filtered
}
