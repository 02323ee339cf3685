// Package client provides the instantiable Permem API client. It resolves
// configuration over documented defaults, performs one HTTP round trip per
// operation, maps raw JSON responses into typed results and classifies
// server-reported failures as [*RequestError].
//
// The primary entry point is [New], which accepts functional options (e.g.
// [WithURL], [WithAPIKey], [WithHTTPClient]). The client never retries and
// keeps no state across calls beyond the immutable resolved [Config]; all
// recovery and backoff policy belongs to the caller. For the process-wide
// convenience layer, see the root permem package.
package client
