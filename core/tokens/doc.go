// Package tokens provides context-length estimation for conversation
// messages sent to the extraction endpoint.
//
// The default [Heuristic] divides the character count of the joined message
// contents by four and rounds up. It is deliberately crude (it is not a
// tokenizer), but the server-side extraction thresholds were tuned against
// this exact estimate, so it must stay the default for wire compatibility
// with the other Permem SDKs. Callers who prefer a real tokenizer can opt in
// to [Tiktoken] via the client's WithTokenEstimator option.
package tokens
