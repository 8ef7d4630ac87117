// Copyright 2025 Docdex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/llms"

	"github.com/docdex/docdex/ai"
)

// DocumentMatcher implements ai.DocumentMatcher using OpenAI-compatible chat APIs.
type DocumentMatcher struct {
	client llms.Model
	logger *slog.Logger
}

// matchResult is the wrapper structure for the LLM's JSON response.
type matchResult struct {
	DocumentIDs []string `json:"document_ids"`
}

// newDocumentMatcher is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newDocumentMatcher(config *ai.Config) (*DocumentMatcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	return &DocumentMatcher{
		client: client,
		logger: slog.Default().With("component", "openai-matcher"),
	}, nil
}

// NewDocumentMatcher creates a new intelligent-search matcher using the
// provided configuration.
//
// Returns ai.DocumentMatcher interface to enforce abstraction.
func NewDocumentMatcher(config *ai.Config) (ai.DocumentMatcher, error) {
	return newDocumentMatcher(config)
}

// MatchDocuments asks the model which of the projected documents answer the
// query. The collection is serialized into the user message; the model sees
// metadata and summaries, never full document text.
func (m *DocumentMatcher) MatchDocuments(ctx context.Context, query string, docs []ai.DocumentProjection) ([]string, error) {
	collection, err := json.Marshal(docs)
	if err != nil {
		return nil, err
	}

	system := fmt.Sprintf(matchPromptTemplate, matchResponseSchema)
	user := fmt.Sprintf("Question: %q\nCollection: %s", query, collection)

	var result matchResult
	if err := completeJSON(ctx, m.client, m.logger, system, user, &result); err != nil {
		return nil, err
	}

	// Drop hallucinated ids so callers only ever see ids they supplied.
	known := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		known[doc.ID] = struct{}{}
	}
	ids := make([]string, 0, len(result.DocumentIDs))
	for _, id := range result.DocumentIDs {
		if _, ok := known[id]; ok {
			ids = append(ids, id)
		}
	}

	m.logger.Debug("matched documents",
		"returned", len(result.DocumentIDs),
		"kept", len(ids))
	return ids, nil
}
