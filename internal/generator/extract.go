// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"encoding/json"
	"strings"
)

// ExtractText recovers the generated text from a completion-service
// response envelope. Envelope shapes are not contractually fixed — they
// vary across providers, models, and API versions — so extraction is a
// closed, ordered set of strategies, each total for the shape it matches:
//
//  1. a "content" array of parts (Anthropic Messages)
//  2. a flat "completion" string (legacy Anthropic)
//  3. an "output.text" string
//  4. an "output.parts" array
//  5. a top-level "text" string
//  6. a nested "message.content" array
//
// When nothing matches, the raw body is returned verbatim: this function
// never fails on shape, and the schema validator downstream decides
// whether the result is usable.
func ExtractText(raw []byte) string {
	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return string(raw)
	}

	for _, strategy := range envelopeStrategies {
		if text, ok := strategy(envelope); ok && text != "" {
			return text
		}
	}

	return string(raw)
}

// envelopeStrategies is tried top to bottom. Order matters: richer shapes
// first so a envelope carrying several fields resolves deterministically.
var envelopeStrategies = []func(map[string]any) (string, bool){
	fromContentParts,
	fromCompletion,
	fromOutputText,
	fromOutputParts,
	fromTopLevelText,
	fromMessageContent,
}

// fromContentParts handles {"content": [{"type":"text","text":"…"}, …]}.
func fromContentParts(envelope map[string]any) (string, bool) {
	parts, ok := envelope["content"].([]any)
	if !ok {
		return "", false
	}
	return joinParts(parts), true
}

// fromCompletion handles {"completion": "…"}.
func fromCompletion(envelope map[string]any) (string, bool) {
	s, ok := envelope["completion"].(string)
	return s, ok
}

// fromOutputText handles {"output": {"text": "…"}}.
func fromOutputText(envelope map[string]any) (string, bool) {
	output, ok := envelope["output"].(map[string]any)
	if !ok {
		return "", false
	}
	s, ok := output["text"].(string)
	return s, ok
}

// fromOutputParts handles {"output": {"parts": ["…", …]}}.
func fromOutputParts(envelope map[string]any) (string, bool) {
	output, ok := envelope["output"].(map[string]any)
	if !ok {
		return "", false
	}
	parts, ok := output["parts"].([]any)
	if !ok {
		return "", false
	}
	return joinParts(parts), true
}

// fromTopLevelText handles {"text": "…"}.
func fromTopLevelText(envelope map[string]any) (string, bool) {
	s, ok := envelope["text"].(string)
	return s, ok
}

// fromMessageContent handles {"message": {"content": [{"text":"…"}, …]}}.
func fromMessageContent(envelope map[string]any) (string, bool) {
	message, ok := envelope["message"].(map[string]any)
	if !ok {
		return "", false
	}
	parts, ok := message["content"].([]any)
	if !ok {
		return "", false
	}
	return joinParts(parts), true
}

// joinParts concatenates the textual pieces of a parts array. Parts are
// either plain strings or objects carrying a "text" field; anything else
// is skipped.
func joinParts(parts []any) string {
	var b strings.Builder
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			b.WriteString(v)
		case map[string]any:
			if text, ok := v["text"].(string); ok {
				b.WriteString(text)
			}
		}
	}
	return b.String()
}
