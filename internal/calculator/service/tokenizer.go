package service

import (
	"cmp"
	"slices"
	"strings"

	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
)

// Tokenize splits body on every literal occurrence of any delimiter in spec.
//
// Empty fields produced by leading, trailing or adjacent delimiters are kept, and a
// body without delimiters yields a single token. When several delimiters match at the
// same position the longest one wins, so declaration order never changes the result.
func Tokenize(body string, spec calculatorDomain.DelimiterSpec) []string {
	delimiters := spec.Delimiters()
	slices.SortStableFunc(delimiters, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	var tokens []string

	start := 0
	for i := 0; i < len(body); {
		if n := matchDelimiter(body[i:], delimiters); n > 0 {
			tokens = append(tokens, body[start:i])
			i += n
			start = i
			continue
		}
		i++
	}

	return append(tokens, body[start:])
}

// matchDelimiter returns the length of the first delimiter that prefixes s, or 0.
// delimiters must be sorted longest first.
func matchDelimiter(s string, delimiters []string) int {
	for _, d := range delimiters {
		if d != "" && strings.HasPrefix(s, d) {
			return len(d)
		}
	}
	return 0
}
