package filter

import "github.com/docdex/docdex/core"

// ResolveMonitor provides hooks to observe the resolution process.
// Implement this interface to track intermediate steps while the engine
// composes the displayed document list.
type ResolveMonitor interface {
	Start(mode Mode)
	AIResultsApplied(docs []*core.Document)
	AfterCategoricalFilters(docs []*core.Document)
	AfterManualSearch(docs []*core.Document)
	Finish(docs []*core.Document)
}

// noopMonitor is a no-op implementation of ResolveMonitor
type noopMonitor struct{}

var _ ResolveMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ Mode)                             {}
func (n *noopMonitor) AIResultsApplied(_ []*core.Document)      {}
func (n *noopMonitor) AfterCategoricalFilters(_ []*core.Document) {}
func (n *noopMonitor) AfterManualSearch(_ []*core.Document)     {}
func (n *noopMonitor) Finish(_ []*core.Document)                {}
