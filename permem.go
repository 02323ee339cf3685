package permem

import (
	"context"

	"github.com/permem/permem-go/core/client"
)

// Re-exported types so singleton callers only import this package.
type (
	Client       = client.Client
	Config       = client.Config
	Option       = client.Option
	Memory       = client.Memory
	MemoryType   = client.MemoryType
	Importance   = client.Importance
	Message      = client.Message
	MessageRole  = client.MessageRole
	RecallMode   = client.RecallMode
	RequestError = client.RequestError

	MemorizeOptions = client.MemorizeOptions
	MemorizeResult  = client.MemorizeResult
	StoredMemory    = client.StoredMemory
	RecallOptions   = client.RecallOptions
	RecallResult    = client.RecallResult
	InjectOptions   = client.InjectOptions
	InjectResult    = client.InjectResult
	ExtractOptions  = client.ExtractOptions
	ExtractResult   = client.ExtractResult
)

// Re-exported constants.
const (
	RoleUser      = client.RoleUser
	RoleAssistant = client.RoleAssistant
	RoleSystem    = client.RoleSystem

	ModeFocused  = client.ModeFocused
	ModeBalanced = client.ModeBalanced
	ModeCreative = client.ModeCreative
)

// Re-exported constructors and options for configuring the singleton (or
// building explicit clients without importing core/client).
var (
	New     = client.New
	FromEnv = client.FromEnv

	WithURL              = client.WithURL
	WithAPIKey           = client.WithAPIKey
	WithMaxContextLength = client.WithMaxContextLength
	WithExtractThreshold = client.WithExtractThreshold
	WithHTTPClient       = client.WithHTTPClient
	WithLogger           = client.WithLogger
	WithTokenEstimator   = client.WithTokenEstimator
)

// ErrMissingUserID is re-exported for errors.Is checks against the
// convenience functions.
var ErrMissingUserID = client.ErrMissingUserID

// defaultClient is the process-wide client behind the convenience functions.
// It is written only by [Configure] and the lazy initialization in
// [Instance], and always replaced wholesale, never mutated. Concurrent calls
// racing a Configure are an accepted limitation: each in-flight call uses
// whichever instance it read, and the last write wins. Callers who need
// stronger guarantees should hold their own client instance.
var defaultClient *client.Client

// Configure unconditionally replaces the process-wide client with a freshly
// constructed one resolved from the given options. Subsequent convenience
// calls use the new instance.
func Configure(opts ...Option) {
	defaultClient = client.New(opts...)
}

// Instance returns the process-wide client, lazily constructing it from the
// PERMEM_* environment variables on first use.
func Instance() *client.Client {
	if defaultClient == nil {
		defaultClient = client.New(client.FromEnv())
	}
	return defaultClient
}

// Memorize stores content as memories for a user via the process-wide client.
func Memorize(ctx context.Context, content string, opts MemorizeOptions) (*MemorizeResult, error) {
	return Instance().Memorize(ctx, content, opts)
}

// Recall searches a user's memories via the process-wide client.
func Recall(ctx context.Context, query string, opts RecallOptions) (*RecallResult, error) {
	return Instance().Recall(ctx, query, opts)
}

// Inject retrieves prompt-ready memories for an inbound message via the
// process-wide client.
func Inject(ctx context.Context, message string, opts InjectOptions) (*InjectResult, error) {
	return Instance().Inject(ctx, message, opts)
}

// Extract submits a conversation turn for memory extraction via the
// process-wide client.
func Extract(ctx context.Context, messages []Message, opts ExtractOptions) (*ExtractResult, error) {
	return Instance().Extract(ctx, messages, opts)
}

// Health reports whether the configured server is up. Like
// [client.Client.Health] it never returns an error.
func Health(ctx context.Context) bool {
	return Instance().Health(ctx)
}
