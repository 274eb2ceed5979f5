package canon

import (
	"testing"

	"roster/internal/ast"
	"roster/internal/parser"
)

func render(t *testing.T, input string) string {
	t.Helper()
	return Render(parser.Parse(input, parser.Options{}))
}

func TestRender_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "info fragment",
			input: "Jimmy Olsen (origin, death);",
			want:  "Jimmy Olsen (origin, death);",
		},
		{
			name:  "ambiguous alias reproduced verbatim",
			input: "Superman [Clark Kent; Kal-El];",
			want:  "Superman [Clark Kent; Kal-El];",
		},
		{
			name:  "group only renders at top level",
			input: "Justice League [Wonder Woman; Batman [Bruce Wayne]];",
			want:  "Justice League [Wonder Woman; Batman [Bruce Wayne]];",
		},
		{
			name:  "dropped entry renders to nothing",
			input: "[Solo];",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace collapses to trimmed names",
			input: "  Superman  ;   Batman   [ Bruce Wayne ] ;",
			want:  "Superman; Batman [Bruce Wayne];",
		},
		{
			name:  "unmatched round keeps partial info",
			input: "Zeta (a,b;",
			want:  "Zeta (a,b;);",
		},
		{
			name:  "multiple roots joined with trailing separator",
			input: "A; B; C;",
			want:  "A; B; C;",
		},
		{
			name:  "raw member rendered as trimmed literal",
			input: "Team [Alpha; [orphan]];",
			want:  "Team [Alpha; [orphan]];",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.input); got != tt.want {
				t.Errorf("render(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRender_RootFiltering(t *testing.T) {
	// Batman is referenced inside the group, so despite being a dataset
	// entry it must not render as a top-level segment.
	ds := parser.Parse("League [Batman [Bruce Wayne]; Flash]; Superman;", parser.Options{})
	if len(ds.Entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(ds.Entries))
	}
	roots := Roots(ds)
	if len(roots) != 2 {
		t.Fatalf("roots = %d, want 2", len(roots))
	}
	names := []string{
		ds.Builder.Char(roots[0]).Name,
		ds.Builder.Char(roots[1]).Name,
	}
	if names[0] != "League" || names[1] != "Superman" {
		t.Errorf("roots = %v", names)
	}
}

func TestRender_SameNameDistinctNodes(t *testing.T) {
	// A group member X and a top-level X share a name but not identity;
	// only the member is filtered from the roots.
	got := render(t, "A [X [q]; Y]; X (p);")
	want := "A [X [q]; Y]; X (p);"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestRender_GroupUsesMembersNotRaw(t *testing.T) {
	// The group interior re-renders from structure: member spacing is
	// canonicalized even though the stored raw keeps the original text.
	got := render(t, "Team [  Alpha  ;  Beta [x]  ];")
	want := "Team [Alpha; Beta [x]];"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestRender_Idempotence(t *testing.T) {
	inputs := []string{
		"Jimmy Olsen (origin, death);",
		"Superman [Clark Kent; Kal-El];",
		"Justice League [Wonder Woman; Batman [Bruce Wayne]];",
		"Iota [A] (x) [B] (y);",
		"Zeta (a,b;",
		"Team [Alpha; [orphan]; (lost); Beta [x]];",
		"Mu ); Nu ];",
		"Outer [Mid [Inner [Leaf [x]]]];",
		"A [X]; X (p);",
		"[Solo]; Real (kept);",
		"Nu (outer (inner) tail);",
		"Eta [never closed",
		"  padded   name   (info)  ;  ",
	}
	for _, input := range inputs {
		c1 := Render(parser.Parse(input, parser.Options{}))
		c2 := Render(parser.Parse(c1, parser.Options{}))
		if c1 != c2 {
			t.Errorf("canonical form is not a fixed point for %q:\n c1 = %q\n c2 = %q", input, c1, c2)
		}
	}
}

// Raws that keep an unmatched opener need extra closers in the
// canonical text, otherwise the reader pairs the interior opener with
// the renderer's own bracket and the form grows on every round trip.
func TestRender_UnbalancedInteriors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "info raw with unmatched opener",
			input: "0((0",
			want:  "0 ((0));",
		},
		{
			name:  "alias raw with unmatched opener",
			input: "0[(00",
			want:  "0 [(00)];",
		},
		{
			name:  "raw member with unmatched round opener",
			input: "Team [A [x]; [open(];",
			want:  "Team [A [x]; [open(];)];",
		},
		{
			name:  "raw member with unmatched square opener",
			input: "Group [M [x]; [a [b",
			want:  "Group [M [x]; [a [b]]];",
		},
		{
			name:  "info raw with unmatched square opener",
			input: "X ([a;",
			want:  "X ([a;]);",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c1 := render(t, tt.input)
			if c1 != tt.want {
				t.Fatalf("render(%q) = %q, want %q", tt.input, c1, tt.want)
			}
			c2 := render(t, c1)
			if c2 != c1 {
				t.Errorf("canonical form is not a fixed point:\n c1 = %q\n c2 = %q", c1, c2)
			}
		})
	}
}

func TestRender_EmptyDataset(t *testing.T) {
	ds := &ast.Dataset{Builder: ast.NewBuilder(ast.Hints{})}
	if got := Render(ds); got != "" {
		t.Errorf("render of empty dataset = %q", got)
	}
}
