package diag

import "roster/internal/source"

// Reporter is the minimal contract for receiving issues from the
// scanner and parser. Implementations: BagReporter (appends to a Bag),
// NopReporter (silent probes, e.g. the group/alias ambiguity scan).
type Reporter interface {
	Report(code Code, sev Severity, raw, path string, span source.Span, msg string)
}

// Emit reports code with its default severity and no extra message.
func Emit(r Reporter, code Code, raw, path string, span source.Span) {
	if r == nil {
		return
	}
	r.Report(code, code.DefaultSeverity(), raw, path, span, "")
}

// BagReporter appends every reported issue to Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, raw, path string, span source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Issue{
		Severity: sev, Code: code,
		Raw: raw, Path: path, Span: span, Message: msg,
	})
}

// NopReporter discards everything. Used for probe scans whose issues
// would duplicate ones already recorded on the same text.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, string, string, source.Span, string) {}
