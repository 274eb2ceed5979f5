// Package diagfmt renders issues and datasets for the CLI: a pretty
// human format with carets and color, and stable JSON for tooling.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"roster/internal/diag"
	"roster/internal/source"
)

type PrettyOpts struct {
	// Color toggles ANSI colors; callers decide from --color and istty.
	Color bool
	// Quiet suppresses everything below Error.
	Quiet bool
}

// Pretty writes issues in emission order, one block per issue:
//
//	name:line:col: SEVERITY CODE: title
//	  <source line>
//	  <caret underline>
//	  at <path>
func Pretty(w io.Writer, bag *diag.Bag, in *source.Input, opts PrettyOpts) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	sevColors := map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevError:   color.New(color.FgRed, color.Bold),
	}
	codeColor := color.New(color.FgWhite, color.Bold)
	for _, c := range sevColors {
		if !opts.Color {
			c.DisableColor()
		}
	}
	if !opts.Color {
		codeColor.DisableColor()
	}

	for _, is := range bag.Items() {
		if opts.Quiet && is.Severity < diag.SevError {
			continue
		}
		line, col := in.LineCol(is.Span.Start)
		msg := is.Message
		if msg == "" {
			msg = is.Code.Title()
		}
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			in.Name, line, col,
			sevColors[is.Severity].Sprint(is.Severity.String()),
			codeColor.Sprint(is.Code.ID()),
			msg)
		writeCaret(w, in, is.Span, line, col)
		if is.Path != "" {
			fmt.Fprintf(w, "  at %s\n", is.Path)
		}
	}
}

func writeCaret(w io.Writer, in *source.Input, sp source.Span, line, col uint32) {
	text := in.Line(line)
	if text == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", text)

	width := int(sp.Len())
	avail := len(text) - int(col) + 1
	if width > avail {
		width = avail
	}
	if width < 1 {
		width = 1
	}
	underline := "^"
	if width > 1 {
		underline += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(col)-1), underline)
}

// Summary writes the one-line tail the CLI prints after the blocks.
func Summary(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	if bag == nil {
		return
	}
	errs, warns := 0, 0
	for _, is := range bag.Items() {
		switch {
		case is.Severity >= diag.SevError:
			errs++
		case is.Severity == diag.SevWarning:
			warns++
		}
	}
	if errs == 0 && warns == 0 && bag.Dropped() == 0 {
		return
	}
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	if !opts.Color {
		red.DisableColor()
		yellow.DisableColor()
	}
	parts := make([]string, 0, 3)
	if errs > 0 {
		parts = append(parts, red.Sprintf("%d error(s)", errs))
	}
	if warns > 0 {
		parts = append(parts, yellow.Sprintf("%d warning(s)", warns))
	}
	if d := bag.Dropped(); d > 0 {
		parts = append(parts, yellow.Sprintf("%d issue(s) over the cap not shown", d))
	}
	fmt.Fprintf(w, "%s\n", strings.Join(parts, ", "))
}
