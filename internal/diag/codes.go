package diag

// Code identifies one kind of structural issue. The ID strings are part
// of the tool's stable output surface (golden files, JSON reports) and
// must not change.
type Code uint8

const (
	UnknownCode Code = iota
	// MissingName: an entry or member has no text before its first
	// bracket; the entry is dropped.
	MissingName
	// InvalidMemberAliasOnly: a group member starts with '[' and so has
	// no name to attach the alias to; kept as a raw member.
	InvalidMemberAliasOnly
	// InvalidFragmentOrder: a '[' fragment follows a '(' fragment on the
	// same node; info fragments are expected to close the sequence.
	InvalidFragmentOrder
	// UnmatchedRound: '(' with no matching ')' before end of input.
	UnmatchedRound
	// NestedRoundNotAllowed: '(' nested inside another '(' span.
	NestedRoundNotAllowed
	// UnmatchedSquare: '[' with no matching ']' before end of input.
	UnmatchedSquare
	// AmbiguousSquareList: '[...]' with a top-level ';' but no nested
	// '['; conservatively kept as one alias instead of split.
	AmbiguousSquareList
	// ExtraClosingRound: ')' at zero round depth.
	ExtraClosingRound
	// ExtraClosingSquare: ']' at zero square depth.
	ExtraClosingSquare
)

var codeIDs = map[Code]string{
	UnknownCode:            "UNKNOWN",
	MissingName:            "MISSING_NAME",
	InvalidMemberAliasOnly: "INVALID_MEMBER_ALIAS_ONLY",
	InvalidFragmentOrder:   "INVALID_FRAGMENT_ORDER",
	UnmatchedRound:         "UNMATCHED_ROUND",
	NestedRoundNotAllowed:  "NESTED_ROUND_NOT_ALLOWED",
	UnmatchedSquare:        "UNMATCHED_SQUARE",
	AmbiguousSquareList:    "AMBIGUOUS_SQUARE_LIST",
	ExtraClosingRound:      "EXTRA_CLOSING_ROUND",
	ExtraClosingSquare:     "EXTRA_CLOSING_SQUARE",
}

var codeTitles = map[Code]string{
	UnknownCode:            "Unknown issue",
	MissingName:            "Entry has no name before its first bracket",
	InvalidMemberAliasOnly: "Group member is a bare alias with no name",
	InvalidFragmentOrder:   "Square bracket after an info fragment",
	UnmatchedRound:         "Unmatched opening parenthesis",
	NestedRoundNotAllowed:  "Nested parentheses are not allowed",
	UnmatchedSquare:        "Unmatched opening square bracket",
	AmbiguousSquareList:    "Square bracket could be a group, kept as alias",
	ExtraClosingRound:      "Closing parenthesis with no opener",
	ExtraClosingSquare:     "Closing square bracket with no opener",
}

// ID returns the stable machine-readable identifier.
func (c Code) ID() string {
	id, ok := codeIDs[c]
	if !ok {
		return codeIDs[UnknownCode]
	}
	return id
}

// Title returns the short human description.
func (c Code) Title() string {
	title, ok := codeTitles[c]
	if !ok {
		return codeTitles[UnknownCode]
	}
	return title
}

func (c Code) String() string {
	return c.ID()
}

// DefaultSeverity maps each code to the severity used when producers do
// not override it. Only reporting metadata: no code aborts parsing.
func (c Code) DefaultSeverity() Severity {
	switch c {
	case MissingName, InvalidMemberAliasOnly, UnmatchedRound, UnmatchedSquare,
		ExtraClosingRound, ExtraClosingSquare:
		return SevError
	case InvalidFragmentOrder, NestedRoundNotAllowed, AmbiguousSquareList:
		return SevWarning
	}
	return SevWarning
}
