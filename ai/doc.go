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


// Package ai provides abstractions for the AI services used in Docdex.
//
// This package defines interfaces for model-backed operations: answering
// natural-language queries against a document collection, extracting
// structured search criteria from a query, and deriving document metadata
// and keywords during ingestion. It follows the dependency inversion
// principle, allowing the search and ingestion layers to depend on
// abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around four service interfaces plus an aggregate:
//
//   - DocumentMatcher: Answers a query with a ranked list of document ids
//   - CriteriaExtractor: Turns a query into structured search criteria
//   - MetadataExtractor: Infers document metadata from raw text
//   - KeywordExtractor: Generates retrieval keywords for a document
//   - Provider: Aggregates the services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewMatcher, etc.) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.Provider
//
// Test utility constructors (mock.NewMatcher, mock.NewCriteriaExtractor)
// return CONCRETE types to enable test assertions and behavior injection via
// the mock's public methods (CallCount, WithXFunc, Reset, etc.).
//
//	matcher := mock.NewMatcher()        // returns *mock.Matcher
//	matcher.WithMatchFunc(...)          // needs concrete type
//	count := matcher.CallCount()        // test assertion
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithModel("gpt-4o-mini"))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	ids, err := provider.DocumentMatcher().MatchDocuments(ctx,
//	    "which of my documents expire this year?", projections)
package ai
