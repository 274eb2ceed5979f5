package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"roster/internal/ast"
	"roster/internal/source"
)

// CheckDatasetInvariants runs a minimal set of structural invariants on
// a parsed dataset:
//  1. every entry handle is valid and names a node with a non-empty name
//  2. every fragment handle is valid; group members point at allocated
//     characters and raw members carry their literal text
//  3. no node appears in Entries twice
//  4. every issue span lies within the input bounds
func CheckDatasetInvariants(ds *ast.Dataset, in *source.Input) error {
	if ds == nil || ds.Builder == nil || in == nil {
		return fmt.Errorf("nil dataset, builder, or input")
	}

	seen := make(map[ast.CharID]bool, len(ds.Entries))
	for _, id := range ds.Entries {
		if !id.IsValid() {
			return fmt.Errorf("invalid entry handle %d", id)
		}
		if seen[id] {
			return fmt.Errorf("entry %d listed twice", id)
		}
		seen[id] = true

		c := ds.Builder.Char(id)
		if c == nil {
			return fmt.Errorf("entry %d not allocated", id)
		}
		if c.Kind != ast.CharNode {
			return fmt.Errorf("entry %d is %s, want node", id, c.Kind)
		}
		if c.Name == "" {
			return fmt.Errorf("entry %d has an empty name", id)
		}
		if err := checkFragments(ds.Builder, id, c); err != nil {
			return err
		}
	}

	lenContent, err := safecast.Conv[uint32](len(in.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	for _, is := range ds.Issues() {
		if is.Span.Start > is.Span.End {
			return fmt.Errorf("inverted issue span %v", is.Span)
		}
		if is.Span.End > lenContent {
			return fmt.Errorf("issue span %v beyond content length %d", is.Span, lenContent)
		}
	}
	return nil
}

func checkFragments(b *ast.Builder, owner ast.CharID, c *ast.Character) error {
	for _, fid := range c.Frags {
		if !fid.IsValid() {
			return fmt.Errorf("entry %d holds invalid fragment handle", owner)
		}
		f := b.Frag(fid)
		if f == nil {
			return fmt.Errorf("fragment %d not allocated", fid)
		}
		if f.Kind != ast.FragGroup {
			if len(f.Members) != 0 {
				return fmt.Errorf("%s fragment %d has members", f.Kind, fid)
			}
			continue
		}
		for _, m := range f.Members {
			if !m.IsValid() {
				return fmt.Errorf("group %d holds invalid member handle", fid)
			}
			mc := b.Char(m)
			if mc == nil {
				return fmt.Errorf("group member %d not allocated", m)
			}
			if mc.Kind == ast.CharRaw && mc.Raw == "" {
				return fmt.Errorf("raw member %d lost its text", m)
			}
		}
	}
	return nil
}
