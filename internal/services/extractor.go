package services

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
)

// ExtractErrorKind classifies why a model reply could not be turned into a
// structured value.
type ExtractErrorKind string

const (
	NoJSONBlock   ExtractErrorKind = "no_json_block"
	MalformedJSON ExtractErrorKind = "malformed_json"
)

type ExtractError struct {
	Kind   ExtractErrorKind
	Detail string
}

func (e *ExtractError) Error() string {
	switch e.Kind {
	case NoJSONBlock:
		return "no valid JSON block found in LLM response"
	default:
		return fmt.Sprintf("failed to parse LLM response as JSON: %s", e.Detail)
	}
}

// Runs of ASCII control characters collapse to a single space so that models
// which embed literal newlines or tabs inside an otherwise-valid document
// still parse.
var controlChars = regexp.MustCompile(`[\x00-\x1f]+`)

// ExtractJSONObject isolates the JSON object inside a free-text model reply
// and parses it. It takes the substring between the first '{' and the last
// '}', strips control characters, and unmarshals. Schema validation is the
// caller's job; required keys differ per call site.
func ExtractJSONObject(raw string) (map[string]interface{}, *ExtractError) {
	log.Printf("🤖 LLM raw response: %s\n", raw)

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 {
		return nil, &ExtractError{Kind: NoJSONBlock}
	}
	if end < start {
		return nil, &ExtractError{Kind: MalformedJSON, Detail: "closing brace precedes opening brace"}
	}

	candidate := controlChars.ReplaceAllString(raw[start:end+1], " ")

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		return nil, &ExtractError{Kind: MalformedJSON, Detail: err.Error()}
	}

	return result, nil
}

// stringValue reads an optional string key from an extracted object.
func stringValue(obj map[string]interface{}, key string) (string, bool) {
	if v, ok := obj[key]; ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

// floatValue reads an optional numeric key from an extracted object.
func floatValue(obj map[string]interface{}, key string) (float64, bool) {
	if v, ok := obj[key]; ok {
		if f, ok := v.(float64); ok {
			return f, true
		}
	}
	return 0, false
}
