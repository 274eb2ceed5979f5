package diag

import (
	"roster/internal/source"
)

// Issue is one structural problem found while parsing roster text.
type Issue struct {
	Severity Severity
	Code     Code
	// Raw is the offending text span, verbatim. For unmatched or stray
	// brackets this is the remainder of the scanned string, not just the
	// bracket character.
	Raw string
	// Path locates the issue structurally, e.g. "Justice League/Batman".
	// Empty for top-level issues.
	Path string
	// Span is the byte range of Raw inside the original input, for
	// caret rendering. Zero span when the producer had no offset.
	Span source.Span
	// Message is optional human text beyond Code.Title().
	Message string
}
