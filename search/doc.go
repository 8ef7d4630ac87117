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


// Package search runs model-backed queries over a document collection.
//
// Two interchangeable strategies answer a query:
//
//   - DirectMatch sends the whole collection (as metadata projections) to
//     the model and lets it pick.
//   - CriteriaExtraction sends only the query, gets structured criteria
//     back, and matches them locally with the fuzzy matcher.
//
// The Runner ties a strategy to a filter.Engine: it claims a generation
// token, runs the search, and applies the result or an explicit empty
// failure state. Resilient wraps any strategy with retries and a circuit
// breaker for flaky model endpoints.
package search
