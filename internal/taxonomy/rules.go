package taxonomy

import "strings"

// Rule associates a keyword list with a result payload. All five association
// tables in the catalog share this shape and the matching functions below,
// so the matching semantics live in exactly one place.
//
// Rule order inside a table is semantic: for single-valued lookups the first
// matching rule wins, so overlapping rules must be listed most-specific first.
type Rule[T any] struct {
	Keywords []string
	Result   T
}

// Normalize lowercases and trims free text before matching.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// matchesAll reports whether every keyword occurs as a substring of the
// normalized input. Keywords in the tables are already lowercase.
func matchesAll(input string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	for _, kw := range keywords {
		if !strings.Contains(input, kw) {
			return false
		}
	}
	return true
}

// matchesAny reports whether at least one keyword occurs as a substring of
// the normalized input.
func matchesAny(input string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(input, kw) {
			return true
		}
	}
	return false
}

// FirstMatch returns the result of the first rule whose keywords all occur
// in the input text.
func FirstMatch[T any](rules []Rule[T], text string) (T, bool) {
	input := Normalize(text)
	for _, r := range rules {
		if matchesAll(input, r.Keywords) {
			return r.Result, true
		}
	}
	var zero T
	return zero, false
}

// AllMatches returns the results of every rule whose keywords all occur in
// the input text, in table order.
func AllMatches[T any](rules []Rule[T], text string) []T {
	input := Normalize(text)
	var out []T
	for _, r := range rules {
		if matchesAll(input, r.Keywords) {
			out = append(out, r.Result)
		}
	}
	return out
}

// AnyKeywordMatches returns the results of every rule with at least one
// keyword hit in the input text, in table order. Product-recommendation
// rows match this way: their keyword lists enumerate alternatives, not
// conjunctions.
func AnyKeywordMatches[T any](rules []Rule[T], text string) []T {
	input := Normalize(text)
	var out []T
	for _, r := range rules {
		if matchesAny(input, r.Keywords) {
			out = append(out, r.Result)
		}
	}
	return out
}
