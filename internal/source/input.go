package source

import (
	"fortio.org/safecast"
)

// Input is one roster text to parse. Name is whatever the caller wants
// to show in diagnostics ("<stdin>", a file path, "test.roster").
type Input struct {
	Name    string
	Content string
}

// NewInput wraps content under a display name.
func NewInput(name, content string) *Input {
	return &Input{Name: name, Content: content}
}

func (in *Input) Len() uint32 {
	n, err := safecast.Convert[uint32](len(in.Content))
	if err != nil {
		return ^uint32(0)
	}
	return n
}

// Slice returns the text covered by sp, clamped to the input.
func (in *Input) Slice(sp Span) string {
	end := sp.End
	if end > in.Len() {
		end = in.Len()
	}
	if sp.Start >= end {
		return ""
	}
	return in.Content[sp.Start:end]
}

// LineCol converts a byte offset to 1-based line and column.
// Columns count bytes, which is what editors expect for ASCII rosters.
func (in *Input) LineCol(off uint32) (line, col uint32) {
	if off > in.Len() {
		off = in.Len()
	}
	line, col = 1, 1
	for i := uint32(0); i < off; i++ {
		if in.Content[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Line returns the full text of the 1-based line number, without the
// trailing newline. Out-of-range lines return "".
func (in *Input) Line(n uint32) string {
	if n == 0 {
		return ""
	}
	cur := uint32(1)
	start := 0
	for i := 0; i <= len(in.Content); i++ {
		if i == len(in.Content) || in.Content[i] == '\n' {
			if cur == n {
				return in.Content[start:i]
			}
			cur++
			start = i + 1
		}
	}
	return ""
}
