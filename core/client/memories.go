package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/permem/permem-go/internal/utils"
)

// Memorize stores content as one or more memories for the given user. The
// server performs the semantic extraction, deduplication and importance
// scoring; the client only ships the raw content and shapes the response.
//
// A [*RequestError] is returned when the server rejects the call. A result
// with Stored=false and Count=0 is not an error; it means the server decided
// nothing was worth storing.
func (c *Client) Memorize(ctx context.Context, content string, opts MemorizeOptions) (*MemorizeResult, error) {
	if opts.UserID == "" {
		return nil, fmt.Errorf("Client.Memorize: %w", ErrMissingUserID)
	}

	body := memorizeRequest{
		Content:        content,
		UserID:         opts.UserID,
		ConversationID: opts.ConversationID,
		Async:          opts.Async,
	}

	start := time.Now()
	_, resp, err := utils.DoPostSync[memorizeResponse](ctx, c.httpClient, c.config.URL+memoriesEndpoint, body, c.headers()...)
	c.logRequest(ctx, "POST", memoriesEndpoint, time.Since(start), err)
	if err != nil {
		return nil, classify(err)
	}

	result := &MemorizeResult{
		Stored:     resp.Stored,
		Count:      resp.StoredCount,
		Duplicates: resp.Duplicates,
	}
	for _, entry := range resp.Results {
		// Entries without a memory payload (e.g. skipped duplicates) carry
		// nothing worth surfacing.
		if entry.Memory == nil {
			continue
		}
		result.Memories = append(result.Memories, StoredMemory{
			ID:      entry.Memory.ID,
			Summary: entry.Memory.Summary,
			Type:    entry.Memory.Type,
			Action:  entry.Action,
		})
	}

	return result, nil
}

// Recall searches the user's memories with a free-text query. Retrieval mode
// and ranking are entirely server-side; the result is returned verbatim with
// no local filtering or reordering.
func (c *Client) Recall(ctx context.Context, query string, opts RecallOptions) (*RecallResult, error) {
	if opts.UserID == "" {
		return nil, fmt.Errorf("Client.Recall: %w", ErrMissingUserID)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("userId", opts.UserID)
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Mode != "" {
		params.Set("mode", string(opts.Mode))
	}
	if opts.ConversationID != "" {
		params.Set("conversationId", opts.ConversationID)
	}

	start := time.Now()
	_, resp, err := utils.DoGetSync[RecallResult](ctx, c.httpClient, c.config.URL+searchEndpoint, params, c.headers()...)
	c.logRequest(ctx, "GET", searchEndpoint, time.Since(start), err)
	if err != nil {
		return nil, classify(err)
	}

	return resp, nil
}
