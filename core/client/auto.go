package client

import (
	"context"
	"fmt"
	"time"

	"github.com/permem/permem-go/internal/utils"
)

// Inject retrieves memories relevant to an inbound user message, formatted
// for prompt injection. Whether to inject at all is decided server-side via
// ShouldInject; the client treats that decision as opaque and never overrides
// it locally.
func (c *Client) Inject(ctx context.Context, message string, opts InjectOptions) (*InjectResult, error) {
	if opts.UserID == "" {
		return nil, fmt.Errorf("Client.Inject: %w", ErrMissingUserID)
	}

	body := injectRequest{
		Message:          message,
		UserID:           opts.UserID,
		ConversationID:   opts.ConversationID,
		ContextLength:    opts.ContextLength,
		MaxContextLength: c.config.MaxContextLength,
	}

	start := time.Now()
	_, resp, err := utils.DoPostSync[InjectResult](ctx, c.httpClient, c.config.URL+inboundEndpoint, body, c.headers()...)
	c.logRequest(ctx, "POST", inboundEndpoint, time.Since(start), err)
	if err != nil {
		return nil, classify(err)
	}

	return resp, nil
}

// Extract submits a conversation turn for post-call memory extraction. When
// the caller omits ContextLength the configured estimator fills it in (the
// crude 4-chars-per-token heuristic by default; see the tokens package). The
// extractThreshold falls back to the resolved config value when the per-call
// override is nil.
func (c *Client) Extract(ctx context.Context, messages []Message, opts ExtractOptions) (*ExtractResult, error) {
	if opts.UserID == "" {
		return nil, fmt.Errorf("Client.Extract: %w", ErrMissingUserID)
	}

	contextLength := opts.ContextLength
	if contextLength == 0 {
		contextLength = c.estimator.Estimate(messageContents(messages))
	}

	threshold := c.config.ExtractThreshold
	if opts.ExtractThreshold != nil {
		threshold = *opts.ExtractThreshold
	}

	body := extractRequest{
		Messages:         messages,
		UserID:           opts.UserID,
		ConversationID:   opts.ConversationID,
		ContextLength:    contextLength,
		MaxContextLength: c.config.MaxContextLength,
		ExtractThreshold: threshold,
		Async:            opts.Async,
	}

	start := time.Now()
	_, resp, err := utils.DoPostSync[ExtractResult](ctx, c.httpClient, c.config.URL+outboundEndpoint, body, c.headers()...)
	c.logRequest(ctx, "POST", outboundEndpoint, time.Since(start), err)
	if err != nil {
		return nil, classify(err)
	}

	return resp, nil
}

// messageContents projects the message slice to its contents for estimation.
func messageContents(messages []Message) []string {
	contents := make([]string, len(messages))
	for i, message := range messages {
		contents[i] = message.Content
	}
	return contents
}
