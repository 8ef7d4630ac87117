package filter

// Mode is the engine's current result source. Exactly one mode is active at
// a time.
type Mode int

const (
	// ModeUnfiltered displays the collection under the categorical filters
	// currently active (possibly none).
	ModeUnfiltered Mode = iota
	// ModeManualSearch displays the fuzzy-search result for the submitted
	// query, applied on top of the categorical filters.
	ModeManualSearch
	// ModeAISearch displays the oracle's result list verbatim.
	ModeAISearch
)

// String returns the mode's name for logging.
func (m Mode) String() string {
	switch m {
	case ModeUnfiltered:
		return "unfiltered"
	case ModeManualSearch:
		return "manual-search"
	case ModeAISearch:
		return "ai-search"
	}
	return "unknown"
}
