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


// Package canon normalizes near-duplicate metadata values into canonical
// labels.
//
// Extracted metadata spells the same real-world entity in slightly different
// ways ("John Doe" / "Jon Doe", "Acme Corp" / "Acme Corporation"). A Registry
// folds raw values in document order: the first spelling of an entity becomes
// its canonical label, and later near-duplicates (within a tight edit-distance
// threshold) map onto it. Canonicalization favors precision over recall —
// two distinct people with similar names must not merge, so looser matches
// become new entities instead.
//
// A Vocabulary aggregates one registry per filter category and is rebuilt
// from scratch whenever the document collection changes.
package canon
