package lists

// And reports whether fn is true for every item of s.
func And[T any](s []T, fn func(T) bool) bool {
	for _, i := range s {
		if !fn(i) {
			return false
		}
	}
	return true
}

// Any reports whether fn is true for at least one item of s.
func Any[T any](s []T, fn func(T) bool) bool {
	for _, i := range s {
		if fn(i) {
			return true
		}
	}
	return false
}

func Filter[T any](s []T, fn func(T) bool) (out []T) {
	for _, i := range s {
		if fn(i) {
			out = append(out, i)
		}
	}
	return
}
