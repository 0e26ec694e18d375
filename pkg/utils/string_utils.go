package utils

// NewNullString returns a pointer to s, or nil when s is empty. Useful for
// optional query parameters and fields that should stay NULL when absent.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
