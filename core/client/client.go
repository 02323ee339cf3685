package client

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/permem/permem-go/core/tokens"
	"github.com/permem/permem-go/internal/utils"
)

// API endpoint paths, relative to the configured base URL.
const (
	memoriesEndpoint = "/v1/memories"
	searchEndpoint   = "/v1/memories/search"
	inboundEndpoint  = "/v1/auto/inbound"
	outboundEndpoint = "/v1/auto/outbound"
	healthEndpoint   = "/health"
)

// Client is a Permem API client. Construct it with [New]; the zero value is
// not usable. A Client is safe for concurrent use: its configuration is
// read-only after construction and no state is shared across calls.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *slog.Logger
	estimator  tokens.Estimator
}

// Option configures a [Client] during construction.
type Option func(*Client)

// WithURL overrides the server base URL. Empty values are ignored so the
// default survives unset configuration sources.
func WithURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.config.URL = url
		}
	}
}

// WithAPIKey sets the API key attached as the x-api-key header. An empty key
// means requests are sent unauthenticated, which a locally run server accepts.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.config.APIKey = apiKey
	}
}

// WithMaxContextLength overrides the context budget forwarded on inject and
// extract calls. Non-positive values are ignored.
func WithMaxContextLength(length int) Option {
	return func(c *Client) {
		if length > 0 {
			c.config.MaxContextLength = length
		}
	}
}

// WithExtractThreshold overrides the default extractThreshold for extract
// calls. The value is passed through uninterpreted; the server validates it.
func WithExtractThreshold(threshold float64) Option {
	return func(c *Client) {
		c.config.ExtractThreshold = threshold
	}
}

// WithHTTPClient replaces the default [http.Client] used for API calls.
// Useful for injecting custom timeouts, transport layers, or test doubles.
// The client itself implements no timeout or cancellation beyond the caller's
// context; it defers entirely to the transport's defaults.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger attaches a logger for request-level debug output. Without one
// the client is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTokenEstimator replaces the default context-length estimator consulted
// when an extract call omits an explicit context length. The default is
// [tokens.Heuristic]; see the tokens package for why it should usually stay
// that way.
func WithTokenEstimator(estimator tokens.Estimator) Option {
	return func(c *Client) {
		if estimator != nil {
			c.estimator = estimator
		}
	}
}

// New returns a [Client] with the given options merged over the documented
// defaults. Each call performs a fresh configuration resolution; instances
// never share state.
func New(opts ...Option) *Client {
	c := &Client{
		config:     defaultConfig(),
		httpClient: &http.Client{},
		estimator:  tokens.Heuristic{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns a copy of the resolved configuration.
func (c *Client) Config() Config {
	return c.config
}

// headers builds the per-request header set. The x-api-key header is only
// attached when a key is configured.
func (c *Client) headers() []utils.HeaderOption {
	if c.config.APIKey == "" {
		return nil
	}
	return []utils.HeaderOption{{Key: "x-api-key", Value: c.config.APIKey}}
}

// classify converts a non-2xx response into a [*RequestError] carrying the
// server-supplied message and status code. Transport-level failures pass
// through unchanged so callers can distinguish them with errors.As.
func classify(err error) error {
	var httpErr *utils.HTTPError
	if errors.As(err, &httpErr) {
		return &RequestError{
			Message:    utils.ExtractErrorMessage(httpErr.Body, httpErr.StatusCode),
			StatusCode: httpErr.StatusCode,
		}
	}
	return err
}

// logRequest emits one debug line per round trip when a logger is attached.
func (c *Client) logRequest(ctx context.Context, method, path string, duration time.Duration, err error) {
	if c.logger == nil {
		return
	}
	if err != nil {
		c.logger.DebugContext(ctx, "permem request failed",
			"method", method,
			"path", path,
			"duration", duration,
			"error", err)
		return
	}
	c.logger.DebugContext(ctx, "permem request completed",
		"method", method,
		"path", path,
		"duration", duration)
}
