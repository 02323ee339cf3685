package utils

// Ptr returns a pointer to v. It avoids the need for a temporary variable
// when the address of a literal must be passed where a pointer is expected,
// e.g. the optional extract threshold override:
//
//	opts := client.ExtractOptions{ExtractThreshold: utils.Ptr(0.3)}
func Ptr[T any](v T) *T {
	return &v
}
