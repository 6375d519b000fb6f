package core

// Sample is the element type of real and complex sample slices.
type Sample interface {
	~float64 | ~complex128
}

// EnsureLen returns buf resized to n, reusing its capacity when possible.
// Reused elements keep their old values.
func EnsureLen[T Sample](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Zero sets every element of buf to 0.
func Zero[T Sample](buf []T) {
	clear(buf)
}
