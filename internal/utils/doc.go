// Package utils provides shared low-level helpers used throughout the
// permem-go internals. It covers generic HTTP request helpers for the JSON
// round-trips against the Permem API, tolerant parsing of server error
// bodies, and small string and pointer utilities.
//
// Key entry points: [DoPostSync] and [DoGetSync] for synchronous JSON
// round-trips, [ExtractErrorMessage] for pulling a human-readable message out
// of a non-2xx response body, and [Ptr] for converting values to pointers.
package utils
