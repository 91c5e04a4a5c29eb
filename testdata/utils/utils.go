package utils

// Ptr returns a pointer to v, for building optional test fields inline.
func Ptr[T any](v T) *T {
	return &v
}
