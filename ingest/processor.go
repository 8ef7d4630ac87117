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


package ingest

import (
	"context"

	"github.com/docdex/docdex/core"
)

// processor is an internal interface for enriching stored documents.
// Implementations handle specific tasks like metadata inference or keyword
// generation.
type processor interface {
	// process enriches the documents identified by the given IDs.
	process(ctx context.Context, ids ...core.ID) error
}
