package scanner

import (
	"roster/internal/diag"
)

// ReadRound consumes one (...) span. s[open] must be '('. It counts
// nested pairs so the matching ')' is found even though nesting is
// disallowed by policy: observed nesting is reported as
// NestedRoundNotAllowed with raw covering the whole span, and the inner
// text is still returned untouched.
//
// With no matching ')' before end of string, UnmatchedRound is reported
// with raw from '(' to the end, inner is everything after '(', and next
// is len(s) so the caller stops consuming this entry.
func ReadRound(s string, base uint32, open int, r diag.Reporter, path string) (inner string, next int) {
	depth := 1
	nested := false
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
			nested = true
		case ')':
			depth--
			if depth == 0 {
				if nested {
					diag.Emit(r, diag.NestedRoundNotAllowed, s[open:i+1], path, tail(base, open, i+1))
				}
				return s[open+1 : i], i + 1
			}
		}
	}
	diag.Emit(r, diag.UnmatchedRound, s[open:], path, tail(base, open, len(s)))
	return s[open+1:], len(s)
}
