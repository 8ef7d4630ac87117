package search

import (
	"context"

	"github.com/docdex/docdex/core"
)

// Strategy turns a natural-language query into a ranked list of document ids
// drawn from the given collection. Strategies never mutate the collection;
// applying the result to display state is the Runner's job.
type Strategy interface {
	// Name identifies the strategy in logs and CLI flags.
	Name() string

	// Search returns matching document ids, most relevant first. An empty
	// result means nothing matched; only transport or model failures are
	// errors.
	Search(ctx context.Context, query string, docs []*core.Document) ([]core.ID, error)
}
