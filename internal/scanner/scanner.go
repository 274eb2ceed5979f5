package scanner

import (
	"roster/internal/diag"
	"roster/internal/source"
)

// Walk scans s left to right maintaining two independent depth
// counters, one for round brackets and one for square. fn is invoked
// only for characters sitting at top level (both counters zero) and
// only for non-bracket characters; returning false stops the walk.
//
// A closer with its counter already at zero is reported as
// ExtraClosingRound / ExtraClosingSquare with raw set to the remainder
// of s from that closer, and scanning continues with the counter still
// at zero. Walk holds no state across calls.
//
// base is the absolute byte offset of s[0] in the original input; it
// only affects issue spans. Returns false iff fn requested early stop.
func Walk(s string, base uint32, r diag.Reporter, path string, fn func(i int, ch byte) bool) bool {
	round, square := 0, 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '(':
			round++
		case ')':
			if round == 0 {
				diag.Emit(r, diag.ExtraClosingRound, s[i:], path, tail(base, i, len(s)))
				continue
			}
			round--
		case '[':
			square++
		case ']':
			if square == 0 {
				diag.Emit(r, diag.ExtraClosingSquare, s[i:], path, tail(base, i, len(s)))
				continue
			}
			square--
		default:
			if round == 0 && square == 0 && fn != nil {
				if !fn(i, ch) {
					return false
				}
			}
		}
	}
	return true
}

// HasTopLevel reports whether s contains ch at top level. The probe is
// silent: any stray closers in s were already reported by the scan that
// produced s, so re-reporting them here would duplicate issues.
func HasTopLevel(s string, ch byte) bool {
	found := false
	Walk(s, 0, diag.NopReporter{}, "", func(_ int, c byte) bool {
		if c == ch {
			found = true
			return false
		}
		return true
	})
	return found
}

func tail(base uint32, from, to int) source.Span {
	return source.Span{Start: base + uint32(from), End: base + uint32(to)}
}
