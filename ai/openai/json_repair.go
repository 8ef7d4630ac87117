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

import "strings"

// stripFences removes markdown code fences that smaller models like to wrap
// around their JSON output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// repairJSON attempts to fix common JSON formatting issues from LLM responses.
// It specifically handles missing opening quotes before keys in JSON objects.
func repairJSON(s string) string {
	// Pattern: after { or , followed by optional whitespace, a bare word
	// ending in ": is a key that lost its opening quote.
	// Example: `, owner":` -> `, "owner":`
	src := []rune(s)
	out := make([]rune, 0, len(src)+16)

	i := 0
	for i < len(src) {
		ch := src[i]
		out = append(out, ch)
		i++

		if ch != '{' && ch != ',' {
			continue
		}

		for i < len(src) && (src[i] == ' ' || src[i] == '\n' || src[i] == '\t') {
			out = append(out, src[i])
			i++
		}

		if i >= len(src) || src[i] == '"' || !isLetter(src[i]) {
			continue
		}

		keyStart := i
		for i < len(src) && (isLetter(src[i]) || src[i] == '_' || src[i] == ' ') {
			i++
		}

		if i+1 < len(src) && src[i] == '"' && src[i+1] == ':' {
			out = append(out, '"')
		}
		out = append(out, src[keyStart:i]...)
	}

	return string(out)
}
