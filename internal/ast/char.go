package ast

// CharKind discriminates the two character variants. The set is closed:
// consumers switch exhaustively and must be updated if a kind is added.
type CharKind uint8

const (
	// CharNode is a named character with an ordered fragment list.
	CharNode CharKind = iota
	// CharRaw is a malformed group member kept only as literal text.
	// It never reaches Dataset.Entries and is never traversed.
	CharRaw
)

func (k CharKind) String() string {
	switch k {
	case CharNode:
		return "node"
	case CharRaw:
		return "raw"
	}
	return "unknown"
}

// Character is one parsed roster entity.
//
// For CharNode, Name is non-empty and trimmed, Frags is in textual
// order, and Raw is unused. For CharRaw, Raw carries the original
// untrimmed member text and the other fields are unused.
type Character struct {
	Kind  CharKind
	Name  string
	Raw   string
	Frags []FragID
}

// FragKind discriminates the three fragment variants. Closed set, same
// rule as CharKind.
type FragKind uint8

const (
	// FragInfo is the interior of one (...), kept whole: comma-separated
	// contents are one fragment, never split.
	FragInfo FragKind = iota
	// FragAlias is a [...] judged not to be a group; one opaque string.
	FragAlias
	// FragGroup is a [...] judged to be a group; Members carries the
	// parsed entities, Raw only serves diagnostics and is never rendered.
	FragGroup
)

func (k FragKind) String() string {
	switch k {
	case FragInfo:
		return "info"
	case FragAlias:
		return "alias"
	case FragGroup:
		return "group"
	}
	return "unknown"
}

// Fragment is one bracketed annotation attached to a character.
// Raw is the bracket interior, trimmed at the edges but otherwise
// verbatim.
type Fragment struct {
	Kind    FragKind
	Raw     string
	Members []CharID
}
