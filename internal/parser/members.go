package parser

import (
	"strings"

	"roster/internal/ast"
	"roster/internal/diag"
	"roster/internal/scanner"
	"roster/internal/source"
)

// parseMembers parses the interior of a confirmed group into its member
// list. Empty pieces are discarded. A piece that begins with '[' has no
// name to parse under; it is kept verbatim as a raw character and
// flagged InvalidMemberAliasOnly. A piece whose own name is missing is
// silently omitted here: the recursive parseEntry already recorded its
// MissingName issue.
func (p *Parser) parseMembers(inner string, base uint32, path string) []ast.CharID {
	var members []ast.CharID
	for _, seg := range scanner.SplitTop(inner, base, Sep, p.r, path) {
		trimmed := strings.TrimSpace(seg.Text)
		if trimmed == "" {
			continue
		}
		if trimmed[0] == '[' {
			diag.Emit(p.r, diag.InvalidMemberAliasOnly, seg.Text, path,
				source.Span{Start: seg.Off, End: seg.Off + uint32(len(seg.Text))})
			members = append(members, p.arenas.NewRaw(seg.Text))
			continue
		}
		if id, ok := p.parseEntry(seg.Text, seg.Off, path); ok {
			members = append(members, id)
		}
	}
	return members
}
