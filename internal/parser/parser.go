package parser

import (
	"strings"

	"roster/internal/ast"
	"roster/internal/diag"
	"roster/internal/scanner"
	"roster/internal/source"
)

// Sep is the entry separator at top level and inside groups.
const Sep = ';'

type Options struct {
	// MaxIssues caps the Bag; <= 0 picks the diag default.
	MaxIssues int
	// Hints presizes the arenas.
	Hints ast.Hints
}

// Parser holds the state for one parse invocation. The issue reporter
// is threaded through every recursive call; there is no global state.
type Parser struct {
	arenas *ast.Builder
	r      diag.Reporter
}

// Parse builds a Dataset from roster text. It never fails: malformed
// input yields a Dataset with fewer entries and more issues.
func Parse(input string, opts Options) *ast.Dataset {
	bag := diag.NewBag(opts.MaxIssues)
	p := &Parser{
		arenas: ast.NewBuilder(opts.Hints),
		r:      diag.BagReporter{Bag: bag},
	}

	var tops []ast.CharID
	for _, seg := range scanner.SplitTop(input, 0, Sep, p.r, "") {
		if strings.TrimSpace(seg.Text) == "" {
			continue
		}
		if id, ok := p.parseEntry(seg.Text, seg.Off, ""); ok {
			tops = append(tops, id)
		}
	}

	return &ast.Dataset{
		Builder: p.arenas,
		Entries: p.flatten(tops),
		Bag:     bag,
	}
}

// parseEntry parses one entry: a candidate name up to the first bracket
// character, then the fragment sequence. Returns false when the entry
// has no name; nothing is constructed in that case.
func (p *Parser) parseEntry(text string, base uint32, path string) (ast.CharID, bool) {
	idx := strings.IndexAny(text, "([")
	if idx < 0 {
		idx = len(text)
	}
	name := strings.TrimSpace(text[:idx])
	if name == "" {
		diag.Emit(p.r, diag.MissingName, text, path, segSpan(base, 0, len(text)))
		return ast.NoCharID, false
	}

	id := p.arenas.NewNode(name)
	here := joinPath(path, name)
	seenInfo := false

	for i := idx; i < len(text); {
		switch text[i] {
		case '(':
			inner, next := scanner.ReadRound(text, base, i, p.r, here)
			p.arenas.PushFrag(id, p.arenas.NewInfo(strings.TrimSpace(inner)))
			seenInfo = true
			i = next
		case '[':
			// Info fragments are expected to terminate the sequence; a
			// square bracket after one is a structural violation, but
			// the fragment is still parsed.
			if seenInfo {
				diag.Emit(p.r, diag.InvalidFragmentOrder, text[i:], here, segSpan(base, i, len(text)))
			}
			open := i
			inner, next := scanner.ReadSquare(text, base, i, p.r, here)
			p.parseSquare(id, text, base, open, next, inner, here)
			i = next
		default:
			// Whitespace between fragments, and anything else outside a
			// recognized bracket. Skipped, not name continuation.
			i++
		}
	}
	return id, true
}

// parseSquare decides alias vs. group for one consumed [...] span and
// attaches the resulting fragment.
//
// A literal '[' inside the interior can only arise from nested
// entities, so it forces a group. Without one, a top-level ';' makes
// the reading ambiguous: it could be a member list, but the
// conservative choice is one opaque alias, flagged AmbiguousSquareList
// and never split.
func (p *Parser) parseSquare(id ast.CharID, text string, base uint32, open, next int, inner, here string) {
	trimmed := strings.TrimSpace(inner)
	switch {
	case strings.ContainsRune(inner, '['):
		innerBase := base + uint32(open) + 1
		members := p.parseMembers(inner, innerBase, here)
		p.arenas.PushFrag(id, p.arenas.NewGroup(trimmed, members))
	case scanner.HasTopLevel(inner, Sep):
		diag.Emit(p.r, diag.AmbiguousSquareList, text[open:next], here, segSpan(base, open, next))
		p.arenas.PushFrag(id, p.arenas.NewAlias(trimmed))
	default:
		p.arenas.PushFrag(id, p.arenas.NewAlias(trimmed))
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "/" + name
}

func segSpan(base uint32, from, to int) source.Span {
	return source.Span{Start: base + uint32(from), End: base + uint32(to)}
}
