package parser

import (
	"roster/internal/ast"
)

// flatten produces the Dataset entry list: every reachable node exactly
// once, first-visit depth-first left-to-right from the top-level
// entries. Raw characters are neither traversed nor listed.
//
// The visited set guards against revisiting a handle. The grammar only
// nests groups downward through freshly parsed text, so true cycles
// cannot occur today; the guard stays anyway so a future grammar
// extension cannot turn this into unbounded recursion.
func (p *Parser) flatten(tops []ast.CharID) []ast.CharID {
	visited := make(map[ast.CharID]bool)
	var order []ast.CharID

	var visit func(id ast.CharID)
	visit = func(id ast.CharID) {
		if !id.IsValid() || visited[id] {
			return
		}
		c := p.arenas.Char(id)
		if c.Kind != ast.CharNode {
			return
		}
		visited[id] = true
		order = append(order, id)
		for _, fid := range c.Frags {
			f := p.arenas.Frag(fid)
			if f.Kind != ast.FragGroup {
				continue
			}
			for _, m := range f.Members {
				visit(m)
			}
		}
	}

	for _, top := range tops {
		visit(top)
	}
	return order
}
