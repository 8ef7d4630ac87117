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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEmptyOwner indicates a processed document has no owner.
	ErrEmptyOwner = errors.New("owner cannot be empty")

	// ErrEmptyType indicates a processed document has no type.
	ErrEmptyType = errors.New("document type cannot be empty")

	// ErrEmptyFileName indicates the FileName field is empty.
	ErrEmptyFileName = errors.New("file name cannot be empty")

	// ErrInvalidUploadTime indicates an upload timestamp is in the future.
	ErrInvalidUploadTime = errors.New("upload timestamp cannot be in the future")

	// ErrInvalidCategory indicates an unknown FilterCategory value.
	ErrInvalidCategory = errors.New("invalid filter category")
)
