package diag

import (
	"fmt"
	"strings"

	"roster/internal/source"
)

// FormatGolden renders issues into a stable one-line-per-issue form
// suitable for golden files and test assertions. Issues keep their
// emission order: that order is part of the determinism contract, so
// unlike typical compiler output there is no sorting step.
func FormatGolden(bag *Bag, in *source.Input) string {
	if bag == nil || bag.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for _, is := range bag.Items() {
		sb.WriteString(formatGoldenLine(is, in))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatGoldenLine(is Issue, in *source.Input) string {
	loc := ""
	if in != nil && !is.Span.Empty() {
		line, col := in.LineCol(is.Span.Start)
		loc = fmt.Sprintf("%d:%d ", line, col)
	}
	path := ""
	if is.Path != "" {
		path = " @" + is.Path
	}
	msg := is.Message
	if msg == "" {
		msg = is.Code.Title()
	}
	return fmt.Sprintf("%s%s %s%s: %s | %q", loc, is.Severity, is.Code.ID(), path, msg, is.Raw)
}
