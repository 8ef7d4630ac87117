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


package search

import "errors"

var (
	// ErrEngineRequired is returned when a filter engine is not provided.
	ErrEngineRequired = errors.New("filter engine required")

	// ErrStrategyRequired is returned when a search strategy is not provided.
	ErrStrategyRequired = errors.New("search strategy required")

	// ErrMatcherRequired is returned when a document matcher is not provided.
	ErrMatcherRequired = errors.New("document matcher required")

	// ErrExtractorRequired is returned when a criteria extractor is not provided.
	ErrExtractorRequired = errors.New("criteria extractor required")

	// ErrEmptyQuery is returned when an AI search is started with a blank query.
	ErrEmptyQuery = errors.New("query is empty")
)
