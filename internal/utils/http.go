package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// HeaderOption is a single HTTP header to set on an outgoing request.
// Headers are applied after the defaults, so an option can override
// Content-Type when a caller really needs to.
type HeaderOption struct {
	Key   string
	Value string
}

// HTTPError is returned by [DoPostSync] and [DoGetSync] when the server
// answers with a non-2xx status. It carries the raw response body so callers
// can extract a server-supplied error message and classify the failure
// themselves. Transport-level failures (DNS, connection refused, timeouts)
// are never wrapped in an HTTPError.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface. The body is truncated so the message
// stays usable in logs even when the server returns a large payload.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("non-2xx status %d: %s", e.StatusCode, TruncateString(string(e.Body), DefaultMaxStringLength))
}

// DoPostSync performs a synchronous HTTP POST request with a JSON body and
// parses the response into OutputStruct.
//
// Error handling strategy:
//   - Context errors (timeout, cancellation) and transport failures are
//     propagated as-is, wrapped only for message context
//   - Non-2xx responses return an [*HTTPError] carrying the status and body
//   - Response body close errors are logged but don't override primary errors
//   - JSON parsing errors include a response preview for debugging
//
// The function always closes the response body via defer, logging any close
// errors without overriding the primary error returned by the function.
func DoPostSync[OutputStruct any](ctx context.Context, client *http.Client, requestURL string, body any, headers ...HeaderOption) (*http.Response, *OutputStruct, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	applyHeaders(req, headers)

	return doRequest[OutputStruct](httpClient, req)
}

// DoGetSync performs a synchronous HTTP GET request with query parameters
// encoded into the URL and parses the response into OutputStruct. It follows
// the same error handling strategy as [DoPostSync].
func DoGetSync[OutputStruct any](ctx context.Context, client *http.Client, requestURL string, query url.Values, headers ...HeaderOption) (*http.Response, *OutputStruct, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	if len(query) > 0 {
		requestURL = requestURL + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	applyHeaders(req, headers)

	return doRequest[OutputStruct](httpClient, req)
}

// applyHeaders sets the default Content-Type and then the caller-supplied
// headers, which therefore win over the defaults.
func applyHeaders(req *http.Request, headers []HeaderOption) {
	req.Header.Set("Content-Type", "application/json")
	for _, header := range headers {
		req.Header.Set(header.Key, header.Value)
	}
}

// doRequest executes the prepared request, enforces the 2xx contract and
// unmarshals the body into OutputStruct.
func doRequest[OutputStruct any](httpClient *http.Client, req *http.Request) (*http.Response, *OutputStruct, error) {
	res, err := httpClient.Do(req)
	if err != nil {
		return res, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer func(body io.ReadCloser) {
		if closeErr := body.Close(); closeErr != nil {
			// Log the close error, but don't override the main error.
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", req.URL.String())
		}
	}(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, &HTTPError{StatusCode: res.StatusCode, Body: respBody}
	}

	var resStruct OutputStruct
	if err = json.Unmarshal(respBody, &resStruct); err != nil {
		return res, nil, fmt.Errorf("error unmarshaling response body (status %d): %w\nResponse preview: %s", res.StatusCode, err, TruncateString(string(respBody), DefaultMaxStringLength))
	}

	return res, &resStruct, nil
}
