package utils

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// errorBody is the shape the Permem API uses for non-2xx responses. The
// error field is best-effort: some proxies and crash paths return plain text
// or malformed JSON instead.
type errorBody struct {
	Error string `json:"error"`
}

// ExtractErrorMessage pulls the server-supplied error message out of a
// non-2xx response body. It first tries a strict JSON decode of the
// `{"error": "..."}` shape; when that fails it attempts to repair the body
// with jsonrepair and retries, so truncated or sloppily quoted error payloads
// still surface a useful message. When no message can be recovered it falls
// back to "HTTP <status>".
func ExtractErrorMessage(body []byte, statusCode int) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 {
		var parsed errorBody
		if err := json.Unmarshal(trimmed, &parsed); err == nil && parsed.Error != "" {
			return parsed.Error
		}

		// The strict decode failed or produced no message. Attempt to repair
		// the JSON and retry before giving up.
		if repaired, err := jsonrepair.JSONRepair(string(trimmed)); err == nil {
			if err := json.Unmarshal([]byte(repaired), &parsed); err == nil && parsed.Error != "" {
				return parsed.Error
			}
		}
	}

	return fmt.Sprintf("HTTP %d", statusCode)
}
