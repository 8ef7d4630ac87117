package canon

import (
	"github.com/docdex/docdex/fuzzy"
)

// Registry is an ordered set of canonical values for one filter category.
// Insertion order matters: when two canonical values are equally close to a
// raw value, the earlier-inserted one wins.
type Registry struct {
	values  []string
	present map[string]struct{}
	matcher fuzzy.Matcher
}

// NewRegistry creates an empty registry. A nil matcher falls back to the
// default edit-distance matcher.
func NewRegistry(matcher fuzzy.Matcher) *Registry {
	if matcher == nil {
		matcher = fuzzy.NewMatcher()
	}
	return &Registry{
		present: make(map[string]struct{}),
		matcher: matcher,
	}
}

// Lookup returns the canonical form of raw without modifying the registry.
// An exact member is returned unchanged; otherwise the single best fuzzy
// candidate within the identity threshold wins; otherwise raw itself is
// returned, meaning it would become a new canonical entity.
func (r *Registry) Lookup(raw string) string {
	if _, ok := r.present[raw]; ok {
		return raw
	}

	matches := r.matcher.SearchStrings(raw, r.values, fuzzy.ThresholdIdentity)
	if len(matches) > 0 {
		return matches[0].Value
	}

	return raw
}

// Resolve canonicalizes raw and records it as a new canonical entity when no
// existing value is close enough.
func (r *Registry) Resolve(raw string) string {
	canonical := r.Lookup(raw)
	if _, ok := r.present[canonical]; !ok {
		r.add(canonical)
	}
	return canonical
}

// Contains reports whether value is already canonical in this registry.
func (r *Registry) Contains(value string) bool {
	_, ok := r.present[value]
	return ok
}

// Values returns the canonical values in insertion order.
func (r *Registry) Values() []string {
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// Len returns the number of canonical values.
func (r *Registry) Len() int {
	return len(r.values)
}

func (r *Registry) add(value string) {
	r.values = append(r.values, value)
	r.present[value] = struct{}{}
}
