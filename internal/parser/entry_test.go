package parser

// Tests for single-entry parsing: names, info fragments, and the
// drop-on-missing-name rule.

import (
	"testing"

	"roster/internal/ast"
	"roster/internal/diag"
)

func TestParse_PlainNames(t *testing.T) {
	ds := parseText(t, "Superman; Lois Lane;")
	if len(ds.Entries) != 2 {
		t.Fatalf("entries = %d, want 2 (%s)", len(ds.Entries), issuesSummary(ds))
	}
	if got := entry(t, ds, 0).Name; got != "Superman" {
		t.Errorf("entry 0 name = %q", got)
	}
	if got := entry(t, ds, 1).Name; got != "Lois Lane" {
		t.Errorf("entry 1 name = %q, internal spaces must survive", got)
	}
	wantCodes(t, ds)
}

func TestParse_NameTrimming(t *testing.T) {
	ds := parseText(t, "   Jimmy Olsen   (origin);")
	c := entry(t, ds, 0)
	if c.Name != "Jimmy Olsen" {
		t.Errorf("name = %q, want trimmed", c.Name)
	}
}

func TestParse_InfoFragmentKeptWhole(t *testing.T) {
	ds := parseText(t, "Jimmy Olsen (origin, death);")
	c := entry(t, ds, 0)
	if len(c.Frags) != 1 {
		t.Fatalf("fragments = %d, want 1", len(c.Frags))
	}
	f := frag(t, ds, c, 0)
	if f.Kind != ast.FragInfo {
		t.Errorf("kind = %s, want info", f.Kind)
	}
	// Comma-separated contents are one fragment, never split.
	if f.Raw != "origin, death" {
		t.Errorf("raw = %q, want %q", f.Raw, "origin, death")
	}
	wantCodes(t, ds)
}

func TestParse_MultipleInfoFragments(t *testing.T) {
	ds := parseText(t, "Alpha (first) (second);")
	c := entry(t, ds, 0)
	if len(c.Frags) != 2 {
		t.Fatalf("fragments = %d, want 2", len(c.Frags))
	}
	if frag(t, ds, c, 0).Raw != "first" || frag(t, ds, c, 1).Raw != "second" {
		t.Error("info fragments out of order or mangled")
	}
	wantCodes(t, ds)
}

func TestParse_MissingNameDropsEntry(t *testing.T) {
	ds := parseText(t, "[Solo];")
	if len(ds.Entries) != 0 {
		t.Fatalf("entries = %d, want 0: no placeholder nodes", len(ds.Entries))
	}
	wantCodes(t, ds, diag.MissingName)
	if got := ds.Issues()[0].Raw; got != "[Solo]" {
		t.Errorf("raw = %q, want original entry text", got)
	}
}

func TestParse_MissingNameWhitespaceOnly(t *testing.T) {
	ds := parseText(t, "   (orphan info);")
	if len(ds.Entries) != 0 {
		t.Fatal("whitespace before a bracket is not a name")
	}
	wantCodes(t, ds, diag.MissingName)
}

func TestParse_EmptyAndBlankInput(t *testing.T) {
	for _, input := range []string{"", "  ", ";", " ; ; "} {
		ds := parseText(t, input)
		if len(ds.Entries) != 0 {
			t.Errorf("Parse(%q) entries = %d, want 0", input, len(ds.Entries))
		}
		if ds.Bag.Len() != 0 {
			t.Errorf("Parse(%q) issues = %s, want none", input, issuesSummary(ds))
		}
	}
}

func TestParse_SeparatorInsideBracketsDoesNotSplit(t *testing.T) {
	ds := parseText(t, "Zeta (a;b); Eta [c;d];")
	if len(ds.Entries) != 2 {
		t.Fatalf("entries = %d, want 2 (%s)", len(ds.Entries), issuesSummary(ds))
	}
	if entry(t, ds, 0).Name != "Zeta" || entry(t, ds, 1).Name != "Eta" {
		t.Error("separator scoping broke entry names")
	}
}

func TestParse_TextAfterFragmentSkippedSilently(t *testing.T) {
	// Stray characters between fragments are a deliberate no-op, not
	// name continuation and not an error.
	ds := parseText(t, "Theta (x) junk [y];")
	c := entry(t, ds, 0)
	if c.Name != "Theta" {
		t.Errorf("name = %q", c.Name)
	}
	if len(c.Frags) != 2 {
		t.Fatalf("fragments = %d, want 2 (%s)", len(c.Frags), issuesSummary(ds))
	}
	wantCodes(t, ds, diag.InvalidFragmentOrder)
}

func TestParse_NoTrailingSeparator(t *testing.T) {
	ds := parseText(t, "Superman")
	if len(ds.Entries) != 1 || entry(t, ds, 0).Name != "Superman" {
		t.Fatalf("entries = %v (%s)", ds.Entries, issuesSummary(ds))
	}
	wantCodes(t, ds)
}
