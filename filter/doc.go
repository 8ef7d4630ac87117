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


// Package filter composes categorical filters, manual fuzzy search, and
// AI-assisted search into one displayed document list.
//
// An Engine owns the state of one viewing session: the current document
// snapshot, the canonical filter vocabulary, the active filter selections,
// and the display mode. Exactly one of three display modes is active at a
// time — Unfiltered, ManualSearch, or AISearch — and Resolve produces the
// final list for whichever mode holds:
//
//   - AISearch results are displayed verbatim in oracle relevance order,
//     ignoring filters and the manual query entirely.
//   - Otherwise documents must pass every category with an active selection
//     (AND across categories, OR within a category), a document's raw field
//     value counting as a pass when it fuzzy-matches any selected canonical
//     value.
//   - A non-empty manual query then re-ranks the survivors through the
//     full-document fuzzy search.
//
// An empty result is a valid terminal state, never an error. Each session
// gets its own Engine; there is no shared or ambient state.
package filter
