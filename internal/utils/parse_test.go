package utils

import "testing"

// TestExtractErrorMessage covers the strict decode, the jsonrepair fallback
// and the "HTTP <status>" default across representative server bodies.
func TestExtractErrorMessage(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		statusCode int
		expected   string
	}{
		{
			name:       "well-formed error body",
			body:       `{"error":"User not found"}`,
			statusCode: 404,
			expected:   "User not found",
		},
		{
			name:       "malformed but repairable body",
			body:       `{error: 'rate limit exceeded'}`,
			statusCode: 429,
			expected:   "rate limit exceeded",
		},
		{
			name:       "truncated body",
			body:       `{"error":"internal server`,
			statusCode: 500,
			expected:   "internal server",
		},
		{
			name:       "empty body",
			body:       "",
			statusCode: 502,
			expected:   "HTTP 502",
		},
		{
			name:       "whitespace body",
			body:       "  \n ",
			statusCode: 503,
			expected:   "HTTP 503",
		},
		{
			name:       "json without error field",
			body:       `{"message":"nope"}`,
			statusCode: 400,
			expected:   "HTTP 400",
		},
		{
			name:       "plain text body",
			body:       "Bad Gateway",
			statusCode: 502,
			expected:   "HTTP 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractErrorMessage([]byte(tt.body), tt.statusCode)
			if got != tt.expected {
				t.Errorf("ExtractErrorMessage(%q, %d) = %q, want %q", tt.body, tt.statusCode, got, tt.expected)
			}
		})
	}
}
