package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"roster/internal/diag"
	"roster/internal/parser"
	"roster/internal/source"
)

func TestPretty_Plain(t *testing.T) {
	content := "Superman [Clark Kent; Kal-El];"
	in := source.NewInput("heroes.roster", content)
	ds := parser.Parse(content, parser.Options{})

	var buf bytes.Buffer
	Pretty(&buf, ds.Bag, in, PrettyOpts{Color: false})
	out := buf.String()

	if !strings.Contains(out, "heroes.roster:1:10: WARNING AMBIGUOUS_SQUARE_LIST") {
		t.Errorf("missing header line:\n%s", out)
	}
	if !strings.Contains(out, content) {
		t.Errorf("missing source line:\n%s", out)
	}
	if !strings.Contains(out, "^"+strings.Repeat("~", 19)) {
		t.Errorf("missing caret underline:\n%s", out)
	}
	if !strings.Contains(out, "at Superman") {
		t.Errorf("missing path line:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color disabled but ANSI escapes present:\n%s", out)
	}
}

func TestPretty_QuietKeepsErrors(t *testing.T) {
	content := "[Solo]; Superman [a; b];"
	in := source.NewInput("x.roster", content)
	ds := parser.Parse(content, parser.Options{})

	var buf bytes.Buffer
	Pretty(&buf, ds.Bag, in, PrettyOpts{Quiet: true})
	out := buf.String()
	if !strings.Contains(out, "MISSING_NAME") {
		t.Errorf("quiet mode dropped an error:\n%s", out)
	}
	if strings.Contains(out, "AMBIGUOUS_SQUARE_LIST") {
		t.Errorf("quiet mode kept a warning:\n%s", out)
	}
}

func TestSummary(t *testing.T) {
	content := "[Solo]; Superman [a; b];"
	ds := parser.Parse(content, parser.Options{})

	var buf bytes.Buffer
	Summary(&buf, ds.Bag, PrettyOpts{})
	out := buf.String()
	if !strings.Contains(out, "1 error(s)") || !strings.Contains(out, "1 warning(s)") {
		t.Errorf("summary = %q", out)
	}
	if strings.Contains(out, "over the cap") {
		t.Errorf("summary mentions a cap with nothing dropped: %q", out)
	}
}

func TestSummary_ReportsDropped(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.Issue{Code: diag.MissingName, Severity: diag.SevError})
	bag.Add(diag.Issue{Code: diag.MissingName, Severity: diag.SevError})
	bag.Add(diag.Issue{Code: diag.MissingName, Severity: diag.SevError})

	var buf bytes.Buffer
	Summary(&buf, bag, PrettyOpts{})
	out := buf.String()
	if !strings.Contains(out, "2 issue(s) over the cap not shown") {
		t.Errorf("summary = %q, want dropped count", out)
	}
}

func TestIssuesJSON(t *testing.T) {
	content := "Superman [Clark Kent; Kal-El];"
	in := source.NewInput("heroes.roster", content)
	ds := parser.Parse(content, parser.Options{})

	var buf bytes.Buffer
	if err := IssuesJSON(&buf, ds.Bag, in); err != nil {
		t.Fatal(err)
	}
	var out IssuesOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Issues) != 1 {
		t.Fatalf("count = %d, issues = %d", out.Count, len(out.Issues))
	}
	is := out.Issues[0]
	if is.Code != "AMBIGUOUS_SQUARE_LIST" || is.Severity != "WARNING" {
		t.Errorf("issue = %+v", is)
	}
	if is.Raw != "[Clark Kent; Kal-El]" {
		t.Errorf("raw = %q", is.Raw)
	}
	if is.Location.Line != 1 || is.Location.Col != 10 {
		t.Errorf("location = %+v", is.Location)
	}
}

func TestDatasetJSON(t *testing.T) {
	content := "Justice League [Wonder Woman; Batman [Bruce Wayne]];"
	ds := parser.Parse(content, parser.Options{})

	out := BuildDatasetOutput(ds)
	if len(out.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(out.Entries))
	}
	if out.Entries[0].Name != "Justice League" {
		t.Errorf("entry 0 = %q", out.Entries[0].Name)
	}
	group := out.Entries[0].Fragments[0]
	if group.Kind != "group" || len(group.Members) != 2 {
		t.Fatalf("group = %+v", group)
	}
	if group.Members[0].Entry == nil || *group.Members[0].Entry != 1 {
		t.Errorf("member 0 should index entry 1: %+v", group.Members[0])
	}
	if len(out.Roots) != 1 || out.Roots[0] != 0 {
		t.Errorf("roots = %v, want [0]", out.Roots)
	}
	if out.Canonical != content {
		t.Errorf("canonical = %q, want %q", out.Canonical, content)
	}

	var buf bytes.Buffer
	if err := DatasetJSON(&buf, ds); err != nil {
		t.Fatal(err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Error("DatasetJSON produced invalid JSON")
	}
}

func TestDatasetJSON_RawMemberInline(t *testing.T) {
	ds := parser.Parse("Team [Alpha; [orphan]];", parser.Options{})
	out := BuildDatasetOutput(ds)
	group := out.Entries[0].Fragments[0]
	if len(group.Members) != 2 {
		t.Fatalf("members = %d", len(group.Members))
	}
	if group.Members[1].Entry != nil {
		t.Error("raw member must not reference an entry")
	}
	if group.Members[1].Raw != " [orphan]" {
		t.Errorf("raw member = %q", group.Members[1].Raw)
	}
}
