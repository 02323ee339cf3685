package client

import "time"

// MemoryType categorizes a memory record. The taxonomy is owned by the
// server; values outside this set may appear as the service evolves and are
// passed through verbatim.
type MemoryType string

const (
	TypeCore         MemoryType = "core"
	TypeFact         MemoryType = "fact"
	TypeDecision     MemoryType = "decision"
	TypePreference   MemoryType = "preference"
	TypeNote         MemoryType = "note"
	TypeEvent        MemoryType = "event"
	TypeInsight      MemoryType = "insight"
	TypeGoal         MemoryType = "goal"
	TypeRelationship MemoryType = "relationship"
	TypeEmotion      MemoryType = "emotion"
)

// Importance is the server-assigned importance band of a memory.
type Importance string

const (
	ImportanceTrivial  Importance = "trivial"
	ImportanceLow      Importance = "low"
	ImportanceMedium   Importance = "medium"
	ImportanceHigh     Importance = "high"
	ImportanceCritical Importance = "critical"
)

// Memory is a memory record created and owned by the server. The client only
// deserializes it; none of the fields are interpreted locally.
type Memory struct {
	ID              string     `json:"id"`
	Summary         string     `json:"summary"`
	Type            MemoryType `json:"type"`
	Importance      Importance `json:"importance"`
	ImportanceScore float64    `json:"importanceScore"`

	// Similarity is only present on recall results.
	Similarity *float64 `json:"similarity,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	Topics   []string `json:"topics,omitempty"`
	Emotions []string `json:"emotions,omitempty"`
	Entities []string `json:"entities,omitempty"`
}

// MessageRole identifies the author of a conversation message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// Message is a single conversation message, constructed by the caller per
// extract request.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// RecallMode tunes the server-side retrieval strategy. The client passes it
// through uninterpreted and performs no local filtering.
type RecallMode string

const (
	ModeFocused  RecallMode = "focused"
	ModeBalanced RecallMode = "balanced"
	ModeCreative RecallMode = "creative"
)

// MemorizeOptions carries the per-call parameters for [Client.Memorize].
type MemorizeOptions struct {
	// UserID is required.
	UserID string

	// ConversationID optionally scopes the memory to a conversation.
	ConversationID string

	// Async asks the server to process extraction in the background. It is a
	// server-side hint only; the client still awaits the HTTP response.
	Async bool
}

// StoredMemory describes one memory the server created or updated during a
// memorize call.
type StoredMemory struct {
	ID      string     `json:"id"`
	Summary string     `json:"summary"`
	Type    MemoryType `json:"type"`
	Action  string     `json:"action"`
}

// MemorizeResult is the typed outcome of [Client.Memorize]. Stored can be
// false with zero memories without the call being an error; callers must
// check these fields rather than relying on the absence of an error.
type MemorizeResult struct {
	Stored     bool
	Count      int
	Memories   []StoredMemory
	Duplicates int
}

// RecallOptions carries the per-call parameters for [Client.Recall].
type RecallOptions struct {
	// UserID is required.
	UserID string

	// Limit caps the number of returned memories when positive.
	Limit int

	// Mode selects the server-side retrieval strategy when set.
	Mode RecallMode

	// ConversationID optionally scopes retrieval to a conversation.
	ConversationID string
}

// RecallResult is the typed outcome of [Client.Recall], returned verbatim
// from the server.
type RecallResult struct {
	Memories []Memory `json:"memories"`
}

// InjectOptions carries the per-call parameters for [Client.Inject].
type InjectOptions struct {
	// UserID is required.
	UserID string

	// ContextLength is the current prompt length in tokens as measured by
	// the caller. Zero is sent as-is; the server treats it as "unknown".
	ContextLength int

	// ConversationID optionally scopes retrieval to a conversation.
	ConversationID string
}

// InjectResult is the typed outcome of [Client.Inject]. ShouldInject is
// decided server-side; the client never second-guesses it.
type InjectResult struct {
	Memories      []Memory `json:"memories"`
	InjectionText string   `json:"injectionText"`
	ShouldInject  bool     `json:"shouldInject"`
}

// ExtractOptions carries the per-call parameters for [Client.Extract].
type ExtractOptions struct {
	// UserID is required.
	UserID string

	// ContextLength is the conversation length in tokens. When zero the
	// client fills it with the configured estimator's estimate.
	ContextLength int

	// ConversationID optionally attributes extracted memories to a
	// conversation.
	ConversationID string

	// ExtractThreshold overrides the configured threshold for this call.
	// Nil means "use the resolved config value".
	ExtractThreshold *float64

	// Async asks the server to extract in the background. Server-side hint
	// only; the client still awaits the HTTP response.
	Async bool
}

// ExtractResult is the typed outcome of [Client.Extract], returned verbatim
// from the server.
type ExtractResult struct {
	ShouldExtract     bool `json:"shouldExtract"`
	Extracted         int  `json:"extracted"`
	SkippedDuplicates int  `json:"skippedDuplicates"`
}

// ---- wire shapes ------------------------------------------------------------

type memorizeRequest struct {
	Content        string `json:"content"`
	UserID         string `json:"userId"`
	ConversationID string `json:"conversationId,omitempty"`
	Async          bool   `json:"async"`
}

type memorizeResultEntry struct {
	Action string `json:"action"`
	Memory *struct {
		ID      string     `json:"id"`
		Summary string     `json:"summary"`
		Type    MemoryType `json:"type"`
	} `json:"memory"`
}

type memorizeResponse struct {
	Stored      bool                  `json:"stored"`
	StoredCount int                   `json:"stored_count"`
	Duplicates  int                   `json:"duplicates"`
	Results     []memorizeResultEntry `json:"results"`
}

type injectRequest struct {
	Message          string `json:"message"`
	UserID           string `json:"userId"`
	ConversationID   string `json:"conversationId,omitempty"`
	ContextLength    int    `json:"contextLength"`
	MaxContextLength int    `json:"maxContextLength"`
}

type extractRequest struct {
	Messages         []Message `json:"messages"`
	UserID           string    `json:"userId"`
	ConversationID   string    `json:"conversationId,omitempty"`
	ContextLength    int       `json:"contextLength"`
	MaxContextLength int       `json:"maxContextLength"`
	ExtractThreshold float64   `json:"extractThreshold"`
	Async            bool      `json:"async"`
}

type healthResponse struct {
	Status string `json:"status"`
}
