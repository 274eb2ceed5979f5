package ast

import (
	"roster/internal/diag"
)

// Dataset is the result of one parse: the arenas, the flattened entry
// list, and every issue in emission order. It is built once and must be
// treated as read-only afterwards; rendering is a pure read.
//
// Entries holds each reachable CharNode exactly once, in first-visit
// depth-first left-to-right order from the top-level entries. Group
// membership is a structural relationship over the same handles, not a
// second copy: a member is also one of Entries.
type Dataset struct {
	Builder *Builder
	Entries []CharID
	Bag     *diag.Bag
}

// Issues returns the ordered issue list.
func (ds *Dataset) Issues() []diag.Issue {
	if ds.Bag == nil {
		return nil
	}
	return ds.Bag.Items()
}

// Referenced computes the set of characters that appear as a member of
// any group fragment of any entry. These are exactly the nodes the
// canonicalizer filters out of the top level.
func (ds *Dataset) Referenced() map[CharID]bool {
	refs := make(map[CharID]bool)
	for _, id := range ds.Entries {
		c := ds.Builder.Char(id)
		for _, fid := range c.Frags {
			f := ds.Builder.Frag(fid)
			if f.Kind != FragGroup {
				continue
			}
			for _, m := range f.Members {
				refs[m] = true
			}
		}
	}
	return refs
}
