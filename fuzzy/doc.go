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


// Package fuzzy provides approximate string matching for document discovery.
//
// Matching computes a normalized dissimilarity score in [0,1] (0 = exact)
// from the edit distance between the query and the best-matching window of
// the candidate, so a hit anywhere inside a long field still scores well.
// Results strictly above the caller's threshold are excluded; the remainder
// is sorted best match first with stable ties.
//
// The Matcher interface keeps callers independent of the scoring
// implementation, so any suitably capable edit-distance or trigram matcher
// can be substituted.
package fuzzy
