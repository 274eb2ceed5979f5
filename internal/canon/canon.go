// Package canon renders a parsed Dataset back into canonical roster
// text. The canonical form is a fixed point: parsing it and rendering
// again yields the same text.
package canon

import (
	"strings"

	"roster/internal/ast"
)

// Roots returns the dataset entries that are not referenced as a member
// of any group, preserving entry order. These are the only characters
// rendered at top level.
func Roots(ds *ast.Dataset) []ast.CharID {
	refs := ds.Referenced()
	var roots []ast.CharID
	for _, id := range ds.Entries {
		if !refs[id] {
			roots = append(roots, id)
		}
	}
	return roots
}

// Render produces the canonical text: roots joined by "; " with one
// trailing ';', or the empty string for an empty dataset. Groups are
// rendered purely from their parsed members; the stored raw interior is
// diagnostic-only and never consulted here.
func Render(ds *ast.Dataset) string {
	roots := Roots(ds)
	if len(roots) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, id := range roots {
		if i > 0 {
			sb.WriteString("; ")
		}
		renderChar(&sb, ds.Builder, id)
	}
	sb.WriteByte(';')
	return sb.String()
}

func renderChar(sb *strings.Builder, b *ast.Builder, id ast.CharID) {
	c := b.Char(id)
	switch c.Kind {
	case ast.CharRaw:
		raw := strings.TrimSpace(c.Raw)
		sb.WriteString(raw)
		sb.WriteString(closeBalance(raw))
	case ast.CharNode:
		sb.WriteString(c.Name)
		for _, fid := range c.Frags {
			renderFrag(sb, b, fid)
		}
	}
}

func renderFrag(sb *strings.Builder, b *ast.Builder, id ast.FragID) {
	f := b.Frag(id)
	switch f.Kind {
	case ast.FragInfo:
		sb.WriteString(" (")
		sb.WriteString(f.Raw)
		sb.WriteString(closeBalance(f.Raw))
		sb.WriteByte(')')
	case ast.FragAlias:
		sb.WriteString(" [")
		sb.WriteString(f.Raw)
		sb.WriteString(closeBalance(f.Raw))
		sb.WriteByte(']')
	case ast.FragGroup:
		sb.WriteString(" [")
		for i, m := range f.Members {
			if i > 0 {
				sb.WriteString("; ")
			}
			renderChar(sb, b, m)
		}
		sb.WriteByte(']')
	}
}

// closeBalance returns the closers that neutralize unmatched openers
// left inside raw. Without them, re-parsing the canonical text pairs
// an interior opener with the bracket the renderer appends and the
// delimiters shift on every round trip.
func closeBalance(raw string) string {
	round, square := 0, 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '(':
			round++
		case ')':
			if round > 0 {
				round--
			}
		case '[':
			square++
		case ']':
			if square > 0 {
				square--
			}
		}
	}
	if round == 0 && square == 0 {
		return ""
	}
	return strings.Repeat(")", round) + strings.Repeat("]", square)
}
