package scanner

import (
	"roster/internal/diag"
)

// ReadSquare consumes one balanced [...] span. s[open] must be '['.
// True nesting of square brackets is permitted (that is how groups
// nest), so only depth is tracked. Any '(' seen inside is delegated to
// ReadRound so interior info fragments are validated in place; their
// issues carry the enclosing path.
//
// With the depth never returning to zero, UnmatchedSquare is reported
// with raw from '[' to the end, inner is everything after '[', and next
// is len(s).
func ReadSquare(s string, base uint32, open int, r diag.Reporter, path string) (inner string, next int) {
	depth := 1
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[open+1 : i], i + 1
			}
		case '(':
			_, after := ReadRound(s, base, i, r, path)
			i = after - 1
		}
	}
	diag.Emit(r, diag.UnmatchedSquare, s[open:], path, tail(base, open, len(s)))
	return s[open+1:], len(s)
}
