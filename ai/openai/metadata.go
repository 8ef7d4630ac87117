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


package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/docdex/docdex/ai"
)

// MetadataExtractor implements ai.MetadataExtractor using OpenAI-compatible chat APIs.
type MetadataExtractor struct {
	client    llms.Model
	charLimit int
	logger    *slog.Logger
}

// rawMetadata matches the JSON shape the prompt asks for; the expiry date
// travels as a string and is parsed locally.
type rawMetadata struct {
	Owner      string `json:"owner"`
	Type       string `json:"document_type"`
	Company    string `json:"company"`
	Country    string `json:"country"`
	Summary    string `json:"summary"`
	ExpiryDate string `json:"expiry_date"`
}

// newMetadataExtractor is an internal constructor that returns the concrete type.
func newMetadataExtractor(config *ai.Config) (*MetadataExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	return &MetadataExtractor{
		client:    client,
		charLimit: config.SummaryCharLimit,
		logger:    slog.Default().With("component", "openai-metadata"),
	}, nil
}

// NewMetadataExtractor creates a new ingestion metadata extractor using the
// provided configuration.
//
// Returns ai.MetadataExtractor interface to enforce abstraction.
func NewMetadataExtractor(config *ai.Config) (ai.MetadataExtractor, error) {
	return newMetadataExtractor(config)
}

// ExtractMetadata infers owner, type, company, country, expiry, and a short
// summary from raw document text. An unparseable expiry date is dropped
// rather than failing the whole extraction.
func (e *MetadataExtractor) ExtractMetadata(ctx context.Context, text string) (ai.DocumentMetadata, error) {
	text = truncateText(text, e.charLimit)
	system := fmt.Sprintf(metadataPromptTemplate, metadataResponseSchema)

	var raw rawMetadata
	if err := completeJSON(ctx, e.client, e.logger, system, text, &raw); err != nil {
		return ai.DocumentMetadata{}, err
	}

	meta := ai.DocumentMetadata{
		Owner:   strings.TrimSpace(raw.Owner),
		Type:    strings.TrimSpace(raw.Type),
		Company: strings.TrimSpace(raw.Company),
		Country: strings.TrimSpace(raw.Country),
		Summary: strings.TrimSpace(raw.Summary),
	}

	if date := strings.TrimSpace(raw.ExpiryDate); date != "" {
		expiry, err := time.Parse("2006-01-02", date)
		if err != nil {
			e.logger.Warn("unparseable expiry date dropped", "value", date)
		} else {
			meta.Expiry = expiry
		}
	}

	e.logger.Debug("extracted metadata",
		"owner", meta.Owner,
		"type", meta.Type,
		"has_expiry", !meta.Expiry.IsZero())
	return meta, nil
}
