package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// UniqueFunc returns the elements of s without later duplicates under eq,
// keeping first appearances in order. s is not modified.
func UniqueFunc[S ~[]E, E any](s S, eq func(a, b E) bool) S {
	out := make(S, 0, len(s))

outer:
	for _, e := range s {
		for _, seen := range out {
			if eq(seen, e) {
				continue outer
			}
		}
		out = append(out, e)
	}

	return out
}
