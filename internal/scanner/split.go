package scanner

import (
	"roster/internal/diag"
)

// Segment is one piece produced by SplitTop, with the absolute byte
// offset of its first character in the original input.
type Segment struct {
	Text string
	Off  uint32
}

// SplitTop splits s at every top-level occurrence of sep, treating
// separators nested inside brackets as ordinary text. The trailing
// segment after the last separator is always included, even when empty.
// No trimming or filtering happens here; callers trim and skip blanks.
func SplitTop(s string, base uint32, sep byte, r diag.Reporter, path string) []Segment {
	var segs []Segment
	start := 0
	Walk(s, base, r, path, func(i int, ch byte) bool {
		if ch == sep {
			segs = append(segs, Segment{Text: s[start:i], Off: base + uint32(start)})
			start = i + 1
		}
		return true
	})
	segs = append(segs, Segment{Text: s[start:], Off: base + uint32(start)})
	return segs
}
