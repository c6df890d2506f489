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

// Unique returns the elements of s in first-seen order with duplicates removed.
// A nil slice stays nil so callers can keep "unset" apart from "empty".
func Unique[S ~[]E, E comparable](s S) S {
	if s == nil {
		return nil
	}

	seen := make(map[E]struct{}, len(s))
	result := make(S, 0, len(s))

	for _, item := range s {
		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}
		result = append(result, item)
	}

	return result
}

// Filter returns the elements of s for which keep returns true.
// Like Unique, it preserves nil.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	if s == nil {
		return nil
	}

	result := make(S, 0, len(s))

	for _, item := range s {
		if keep(item) {
			result = append(result, item)
		}
	}

	return result
}
