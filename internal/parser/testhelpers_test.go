package parser

import (
	"fmt"
	"strings"
	"testing"

	"roster/internal/ast"
	"roster/internal/diag"
)

func parseText(t *testing.T, input string) *ast.Dataset {
	t.Helper()
	return Parse(input, Options{})
}

// entry fetches the i-th dataset entry and fails loudly when the shape
// is not what the test expected.
func entry(t *testing.T, ds *ast.Dataset, i int) *ast.Character {
	t.Helper()
	if i >= len(ds.Entries) {
		t.Fatalf("want entry %d, dataset has %d (issues: %s)", i, len(ds.Entries), issuesSummary(ds))
	}
	return ds.Builder.Char(ds.Entries[i])
}

func frag(t *testing.T, ds *ast.Dataset, c *ast.Character, i int) *ast.Fragment {
	t.Helper()
	if i >= len(c.Frags) {
		t.Fatalf("%s: want fragment %d, node has %d", c.Name, i, len(c.Frags))
	}
	return ds.Builder.Frag(c.Frags[i])
}

func issuesSummary(ds *ast.Dataset) string {
	issues := ds.Issues()
	if len(issues) == 0 {
		return "<none>"
	}
	lines := make([]string, len(issues))
	for i, is := range issues {
		lines[i] = fmt.Sprintf("[%s] %q", is.Code.ID(), is.Raw)
	}
	return strings.Join(lines, "; ")
}

// wantCodes asserts the exact issue sequence, in emission order.
func wantCodes(t *testing.T, ds *ast.Dataset, codes ...diag.Code) {
	t.Helper()
	got := ds.Bag.Codes()
	if len(got) != len(codes) {
		t.Fatalf("issues = %s, want %d codes %v", issuesSummary(ds), len(codes), codes)
	}
	for i := range codes {
		if got[i] != codes[i] {
			t.Errorf("issue %d = %s, want %s (all: %s)", i, got[i], codes[i], issuesSummary(ds))
		}
	}
}
