package client

import (
	"context"
	"time"

	"github.com/permem/permem-go/internal/utils"
)

// Health reports whether the server is reachable and answering its liveness
// endpoint with status "ok". It is the one operation that never returns an
// error: transport failures, non-2xx statuses and unparsable bodies all
// surface as false so callers can poll it unconditionally.
func (c *Client) Health(ctx context.Context) bool {
	start := time.Now()
	_, resp, err := utils.DoGetSync[healthResponse](ctx, c.httpClient, c.config.URL+healthEndpoint, nil, c.headers()...)
	c.logRequest(ctx, "GET", healthEndpoint, time.Since(start), err)
	if err != nil || resp == nil {
		return false
	}
	return resp.Status == "ok"
}
