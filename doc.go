// Package permem is the Go SDK for the Permem memory-augmentation API.
//
// The package offers two ways in. Top-level convenience functions
// ([Memorize], [Recall], [Inject], [Extract], [Health]) operate on a lazily
// created process-wide client configured from the PERMEM_* environment
// variables and replaceable via [Configure]:
//
//	permem.Configure(permem.WithURL("https://api.permem.dev"), permem.WithAPIKey(key))
//	result, err := permem.Memorize(ctx, "I moved to Lisbon", permem.MemorizeOptions{UserID: "user-42"})
//
// Applications that need multiple configurations, injected HTTP clients or
// explicit lifecycles should construct instances directly via the core/client
// package, which this package re-exports the types of.
//
// All heavy lifting (semantic extraction, deduplication, importance scoring,
// graph construction, similarity search) happens inside the remote Permem
// service. This SDK is a thin one-shot mapper from one HTTP round trip to one
// typed result or one classified error: it never retries, never caches, and
// never overrides server-side decisions such as shouldInject or shouldExtract.
package permem
