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
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/docdex/docdex/ai"
)

// ErrEmptyResponse is returned when the model sends back no choices at all.
var ErrEmptyResponse = errors.New("openai: model returned no choices")

// newClient builds a langchaingo chat client from the shared config.
func newClient(config *ai.Config) (llms.Model, error) {
	return openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.Model),
	)
}

// completeJSON runs one chat completion with a system and a user message and
// unmarshals the model's JSON answer into out. Malformed JSON is retried up
// to 3 times, with fence stripping and key repair applied before each parse.
func completeJSON(ctx context.Context, client llms.Model, logger *slog.Logger, system, user string, out any) error {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(system),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(user),
			},
		},
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return err
		}

		if len(response.Choices) < 1 {
			logger.Debug("no choices returned from model")
			return ErrEmptyResponse
		}

		responseText := stripFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), out); err != nil {
			lastErr = err
			logger.Warn("error parsing model response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		return nil
	}

	logger.Error("failed to parse model response after retries", "err", lastErr)
	return lastErr
}
