package ptr

// Ptr returns a pointer to v. Handy for optional fields in requests and filters.
func Ptr[T any](v T) *T {
	return &v
}
