package service

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var codeFencePattern = regexp.MustCompile("(?i)```(?:json)?")

// StripCodeFences removes Markdown code-fence markers (with or without a json
// tag) and trims surrounding whitespace. Text without fences is only trimmed.
func StripCodeFences(raw string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(raw, ""))
}

// ExtractPayload strictly parses cleaned model output. A truthy top-level
// "data" member is unwrapped; otherwise the root is the payload. The result
// is compacted.
func ExtractPayload(cleaned string) (json.RawMessage, error) {
	var root json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &root); err != nil {
		return nil, &ModelOutputError{Raw: cleaned, Reason: "failed to parse response as JSON: " + err.Error()}
	}
	if isJSONNull(root) {
		return nil, &ModelOutputError{Raw: cleaned, Reason: "response is null"}
	}

	payload := root
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(root, &obj); err == nil {
		if data, ok := obj["data"]; ok && isTruthyJSON(data) {
			payload = data
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, payload); err != nil {
		return nil, &ModelOutputError{Raw: cleaned, Reason: err.Error()}
	}
	return json.RawMessage(buf.Bytes()), nil
}

func isJSONNull(v json.RawMessage) bool {
	return string(bytes.TrimSpace(v)) == "null"
}

// isTruthyJSON treats null, false, 0 and "" as absent.
func isTruthyJSON(v json.RawMessage) bool {
	s := string(bytes.TrimSpace(v))
	switch s {
	case "", "null", "false", `""`:
		return false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f != 0
	}
	return true
}
