package generation

import (
	"encoding/json"
	"strings"
)

const fence = "```"

// ExtractJSON returns the JSON document inside model output. A reply that is
// already valid JSON is returned as is, even when its strings contain
// backticks. Otherwise a markdown fence such as ```json ... ``` and any prose
// around it are dropped.
func ExtractJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if json.Valid([]byte(trimmed)) {
			return trimmed
		}
	}

	start := strings.Index(trimmed, fence)
	if start == -1 {
		return trimmed
	}

	body := trimmed[start+len(fence):]
	if nl := strings.IndexByte(body, '\n'); nl != -1 {
		// language tag on the opening fence line
		if tag := strings.TrimSpace(body[:nl]); !strings.ContainsAny(tag, "{[") {
			body = body[nl+1:]
		}
	}
	if end := strings.LastIndex(body, fence); end != -1 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}
