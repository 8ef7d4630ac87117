package filter

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/docdex/docdex/canon"
	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/fuzzy"
)

// Engine owns the document discovery state for one viewing session.
// All operations are synchronous, in-memory computations; the engine is not
// safe for concurrent use and is meant to be driven by a single session.
type Engine struct {
	documents []*core.Document
	index     map[core.ID]*core.Document
	vocab     *canon.Vocabulary

	active      map[core.FilterCategory]map[string]struct{}
	manualQuery string

	aiActive   bool
	aiPending  bool
	aiResults  []core.ID
	generation uint64

	matcher fuzzy.Matcher
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithMatcher sets a custom fuzzy matcher.
// Default is the edit-distance matcher.
func WithMatcher(matcher fuzzy.Matcher) Option {
	return func(e *Engine) error {
		if matcher == nil {
			matcher = fuzzy.NewMatcher()
		}
		e.matcher = matcher
		return nil
	}
}

// NewEngine creates an engine with an empty document snapshot.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		index:   make(map[core.ID]*core.Document),
		active:  emptySelections(),
		matcher: fuzzy.NewMatcher(),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	e.vocab = canon.BuildVocabulary(nil, e.matcher)
	return e, nil
}

// SetDocuments replaces the document snapshot and rebuilds the canonical
// vocabulary from scratch. Active filter selections survive an update;
// selections whose canonical value disappeared simply match nothing.
func (e *Engine) SetDocuments(docs []*core.Document) {
	e.documents = make([]*core.Document, 0, len(docs))
	e.index = make(map[core.ID]*core.Document, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		e.documents = append(e.documents, doc)
		e.index[doc.Id] = doc
	}

	e.vocab = canon.BuildVocabulary(e.documents, e.matcher)
	e.logger.Debug("document snapshot updated", "count", len(e.documents))
}

// Documents returns the current snapshot in feed order.
func (e *Engine) Documents() []*core.Document {
	out := make([]*core.Document, len(e.documents))
	copy(out, e.documents)
	return out
}

// Vocabulary exposes the canonical filter vocabulary for the snapshot.
func (e *Engine) Vocabulary() *canon.Vocabulary {
	return e.vocab
}

// Options returns the canonical filter options for a category, sorted for
// display.
func (e *Engine) Options(category core.FilterCategory) []string {
	return e.vocab.Options(category)
}

// FilterOptions narrows a category's options as the user types into the
// sidebar sub-search box.
func (e *Engine) FilterOptions(category core.FilterCategory, typed string) []string {
	return e.vocab.FilterOptions(category, typed)
}

// ToggleFilter adds or removes one canonical value from a category's
// selection. Toggling a filter forcibly exits AI-search mode, but a manual
// query already in effect stays in effect.
func (e *Engine) ToggleFilter(category core.FilterCategory, value string) error {
	if err := core.ValidateCategory(category); err != nil {
		return ErrUnknownCategory
	}

	e.dropAIResults()

	selection := e.active[category]
	if _, ok := selection[value]; ok {
		delete(selection, value)
	} else {
		selection[value] = struct{}{}
	}

	e.logger.Debug("filter toggled",
		"category", category.String(),
		"value", value,
		"selected", len(selection))
	return nil
}

// ActiveFilters returns the selected canonical values per category, sorted,
// omitting categories with no selection.
func (e *Engine) ActiveFilters() map[core.FilterCategory][]string {
	out := make(map[core.FilterCategory][]string)
	for category, selection := range e.active {
		if len(selection) == 0 {
			continue
		}
		values := make([]string, 0, len(selection))
		for value := range selection {
			values = append(values, value)
		}
		sort.Strings(values)
		out[category] = values
	}
	return out
}

// HasActiveFilters reports whether any category has a selection.
func (e *Engine) HasActiveFilters() bool {
	for _, selection := range e.active {
		if len(selection) > 0 {
			return true
		}
	}
	return false
}

// ClearFilters resets categorical filters, the manual query, and any AI
// results, returning to the unfiltered mode.
func (e *Engine) ClearFilters() {
	e.active = emptySelections()
	e.manualQuery = ""
	e.dropAIResults()
	e.logger.Debug("filters cleared")
}

// SubmitSearch submits the manual search box. A non-empty query switches to
// manual-search mode and drops any AI results; an empty query is equivalent
// to the unfiltered mode under the current filters.
func (e *Engine) SubmitSearch(query string) {
	e.dropAIResults()
	e.manualQuery = strings.TrimSpace(query)
	e.logger.Debug("manual search submitted", "query", e.manualQuery)
}

// Query returns the manual query currently in effect.
func (e *Engine) Query() string {
	return e.manualQuery
}

// BeginAISearch prepares the engine for an AI search: all categorical
// filters and the manual query are cleared so the eventual result set has
// unambiguous provenance. The returned token must be passed to
// CompleteAISearch or FailAISearch; intervening state changes invalidate it,
// so a stale oracle response is discarded (last writer wins).
func (e *Engine) BeginAISearch() uint64 {
	e.active = emptySelections()
	e.manualQuery = ""
	e.aiActive = false
	e.aiResults = nil
	e.aiPending = true
	e.generation++
	e.logger.Debug("ai search started", "generation", e.generation)
	return e.generation
}

// CompleteAISearch applies the oracle's ranked result list. Returns false if
// the token is stale and the response was discarded.
func (e *Engine) CompleteAISearch(token uint64, ids []core.ID) bool {
	if token != e.generation {
		e.logger.Debug("stale ai response discarded", "token", token, "generation", e.generation)
		return false
	}
	e.aiResults = make([]core.ID, len(ids))
	copy(e.aiResults, ids)
	e.aiActive = true
	e.aiPending = false
	e.logger.Debug("ai search completed", "results", len(ids))
	return true
}

// FailAISearch records an oracle failure as an explicit empty AI result set.
// The engine deliberately stays in AI-search mode rather than silently
// reverting, so the caller can show a real empty state alongside the
// transient-failure notice. Returns false if the token is stale.
func (e *Engine) FailAISearch(token uint64) bool {
	if token != e.generation {
		return false
	}
	e.aiResults = nil
	e.aiActive = true
	e.aiPending = false
	e.logger.Debug("ai search failed, holding empty result set")
	return true
}

// Searching reports whether an AI search is in flight. It distinguishes
// "empty because the request is pending" from "empty because nothing
// matched".
func (e *Engine) Searching() bool {
	return e.aiPending
}

// Mode returns the active display mode.
func (e *Engine) Mode() Mode {
	switch {
	case e.aiActive:
		return ModeAISearch
	case e.manualQuery != "":
		return ModeManualSearch
	}
	return ModeUnfiltered
}

// Resolve computes the document list to display for the current mode.
// An empty list is a valid terminal state.
func (e *Engine) Resolve() []*core.Document {
	return e.ResolveWithMonitor(nil)
}

// ResolveWithMonitor resolves with observation callbacks at each stage.
func (e *Engine) ResolveWithMonitor(monitor ResolveMonitor) []*core.Document {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(e.Mode())

	// AI results are displayed verbatim, in oracle relevance order. Ids no
	// longer present in the snapshot vanish without complaint.
	if e.aiActive {
		docs := make([]*core.Document, 0, len(e.aiResults))
		for _, id := range e.aiResults {
			if doc, ok := e.index[id]; ok {
				docs = append(docs, doc)
			}
		}
		monitor.AIResultsApplied(docs)
		monitor.Finish(docs)
		return docs
	}

	docs := e.documents
	if e.HasActiveFilters() {
		filtered := make([]*core.Document, 0, len(docs))
		for _, doc := range docs {
			if e.passesFilters(doc) {
				filtered = append(filtered, doc)
			}
		}
		docs = filtered
	}
	monitor.AfterCategoricalFilters(docs)

	if e.manualQuery != "" {
		matches := e.matcher.SearchDocuments(e.manualQuery, docs, fuzzy.DocumentKeys(), fuzzy.ThresholdExploratory)
		ranked := make([]*core.Document, 0, len(matches))
		for _, match := range matches {
			ranked = append(ranked, match.Document)
		}
		docs = ranked
		monitor.AfterManualSearch(docs)
	} else {
		// Keep the caller's default order; hand back a copy so later
		// snapshot updates cannot mutate a list already displayed.
		docs = append([]*core.Document(nil), docs...)
	}

	monitor.Finish(docs)
	return docs
}

// TypeCounts returns how many documents fall into each canonical type
// bucket, for the dashboard distribution chart.
func (e *Engine) TypeCounts() map[string]int {
	counts := make(map[string]int)
	for _, doc := range e.documents {
		if doc.IsProcessing || doc.Type == "" {
			continue
		}
		counts[e.vocab.Canonical(core.CategoryType, doc.Type)]++
	}
	return counts
}

// passesFilters applies the AND-across-categories / OR-within-category rule.
// A document lacking a field fails any active filter on that category.
func (e *Engine) passesFilters(doc *core.Document) bool {
	for category, selection := range e.active {
		if len(selection) == 0 {
			continue
		}

		raw := doc.FieldValue(category)
		if raw == "" {
			return false
		}

		selected := make([]string, 0, len(selection))
		for value := range selection {
			selected = append(selected, value)
		}
		sort.Strings(selected)

		if len(e.matcher.SearchStrings(raw, selected, fuzzy.ThresholdIdentity)) == 0 {
			return false
		}
	}
	return true
}

// dropAIResults leaves AI-search mode and invalidates any in-flight request.
func (e *Engine) dropAIResults() {
	e.aiActive = false
	e.aiPending = false
	e.aiResults = nil
	e.generation++
}

func emptySelections() map[core.FilterCategory]map[string]struct{} {
	selections := make(map[core.FilterCategory]map[string]struct{}, len(core.Categories))
	for _, category := range core.Categories {
		selections[category] = make(map[string]struct{})
	}
	return selections
}
