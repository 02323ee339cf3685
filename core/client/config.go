package client

import (
	"os"
	"strconv"
)

const (
	// DefaultURL is the server address used when none is configured. It
	// matches the default listen address of a locally run permem-core.
	DefaultURL = "http://localhost:3333"

	// DefaultMaxContextLength is the context budget advertised to the server
	// on inject and extract calls when the caller does not override it.
	DefaultMaxContextLength = 8000

	// DefaultExtractThreshold is the importance threshold sent on extract
	// calls when neither the config nor the call options override it.
	DefaultExtractThreshold = 0.7
)

// Environment variables consulted by [FromEnv]. EnvUserID is not read by the
// client itself, since a user identifier must always be caller-supplied, but
// is exported for CLI integrations that resolve one on the caller's behalf.
const (
	EnvURL              = "PERMEM_URL"
	EnvAPIKey           = "PERMEM_API_KEY"
	EnvMaxContextLength = "PERMEM_MAX_CONTEXT_LENGTH"
	EnvExtractThreshold = "PERMEM_EXTRACT_THRESHOLD"
	EnvUserID           = "PERMEM_USER_ID"
)

// Config is the resolved client configuration. It is built once in [New] by
// merging caller-supplied options over the defaults above and is immutable
// for the lifetime of the client instance.
//
// Out-of-range values (e.g. a negative threshold) are deliberately not
// validated here; the server is the sole source of truth for validation and
// rejects them with a classified error.
type Config struct {
	// URL is the base address of the Permem server, without a trailing slash.
	URL string

	// APIKey, when non-empty, is sent as the x-api-key header on every request.
	APIKey string

	// MaxContextLength is forwarded verbatim on inject and extract calls.
	MaxContextLength int

	// ExtractThreshold is the default extractThreshold for extract calls.
	ExtractThreshold float64
}

// defaultConfig returns the documented defaults that options are merged over.
func defaultConfig() Config {
	return Config{
		URL:              DefaultURL,
		MaxContextLength: DefaultMaxContextLength,
		ExtractThreshold: DefaultExtractThreshold,
	}
}

// FromEnv returns an option that overlays configuration from the PERMEM_*
// environment variables. Only set, non-empty variables win over whatever is
// already resolved, so explicit options placed after FromEnv still take
// precedence. Values that fail to parse are ignored rather than failing
// construction.
func FromEnv() Option {
	return func(c *Client) {
		if v := os.Getenv(EnvURL); v != "" {
			c.config.URL = v
		}
		if v := os.Getenv(EnvAPIKey); v != "" {
			c.config.APIKey = v
		}
		if v := os.Getenv(EnvMaxContextLength); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				c.config.MaxContextLength = n
			}
		}
		if v := os.Getenv(EnvExtractThreshold); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.config.ExtractThreshold = f
			}
		}
	}
}
