package ingest

import "errors"

var (
	// ErrRepositoryRequired is returned when a document repository is not provided.
	ErrRepositoryRequired = errors.New("document repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmptyFileName is returned when a submission has no file name.
	ErrEmptyFileName = errors.New("file name is empty")

	// ErrEmptyText is returned when a submission has no extracted text.
	ErrEmptyText = errors.New("document text is empty")
)
