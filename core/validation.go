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


package core

import (
	"fmt"
	"time"
)

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - FileName must not be empty
//   - UploadedAt must not be in the future
//   - Once processing has completed, Owner and Type must not be empty
//
// NOT validated (populated by the extraction pipeline):
//   - Company, Country, Summary, Keywords (optional by contract)
//   - ID (0 is valid from database sequences)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.FileName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyFileName)
	}

	if !IsValidTimestamp(doc.UploadedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidUploadTime)
	}

	if !doc.IsProcessing {
		if doc.Owner == "" {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyOwner)
		}
		if doc.Type == "" {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyType)
		}
	}

	return nil
}

// ValidateCategory validates that a FilterCategory has a valid value.
func ValidateCategory(category FilterCategory) error {
	switch category {
	case CategoryOwner, CategoryType, CategoryCompany, CategoryCountry:
		return nil
	}
	return fmt.Errorf("%w: value %d", ErrInvalidCategory, category)
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
