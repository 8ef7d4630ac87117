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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// Host is the base URL for the OpenAI-compatible API.
	// Example: "http://localhost:11434/v1" for a local Ollama server
	Host string

	// APIKey authenticates requests to the API. Local OpenAI-compatible
	// servers usually accept any non-empty value.
	APIKey string

	// Model is the chat model identifier used for every service.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	Model string

	// MaxKeywords caps how many keywords the keyword extractor may return
	// per document. Default: 8
	MaxKeywords int

	// SummaryCharLimit caps how much document text is sent to the model
	// for metadata extraction. Default: 6000
	SummaryCharLimit int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the API host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithModel sets the chat model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithMaxKeywords sets the per-document keyword cap.
func WithMaxKeywords(max int) ConfigOption {
	return func(c *Config) {
		c.MaxKeywords = max
	}
}

// WithSummaryCharLimit sets the text truncation limit for extraction.
func WithSummaryCharLimit(limit int) ConfigOption {
	return func(c *Config) {
		c.SummaryCharLimit = limit
	}
}

// DefaultConfig returns a Config with sensible defaults for a local
// OpenAI-compatible server.
func DefaultConfig() *Config {
	return &Config{
		Host:             "http://localhost:11434/v1",
		APIKey:           "ollama",
		Model:            "qwen2.5:3b",
		MaxKeywords:      8,
		SummaryCharLimit: 6000,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
//
// Example:
//   cfg := NewConfig(
//       WithHost("https://api.openai.com/v1"),
//       WithModel("gpt-4o-mini"),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It adds the /v1 suffix to the host if missing, which is required by most
// OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.MaxKeywords < 1 {
		return errors.New("ai config: MaxKeywords must be at least 1")
	}
	if c.SummaryCharLimit < 100 {
		return errors.New("ai config: SummaryCharLimit must be at least 100")
	}
	return nil
}
