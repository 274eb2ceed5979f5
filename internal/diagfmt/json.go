package diagfmt

import (
	"encoding/json"
	"io"

	"roster/internal/ast"
	"roster/internal/canon"
	"roster/internal/diag"
	"roster/internal/source"
)

// LocationJSON is a byte/line position inside one input.
type LocationJSON struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      uint32 `json:"line,omitempty"`
	Col       uint32 `json:"col,omitempty"`
}

// IssueJSON is one issue in the machine-readable report.
type IssueJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Raw      string       `json:"raw"`
	Path     string       `json:"path,omitempty"`
	Location LocationJSON `json:"location"`
}

// IssuesOutput is the root of the issue report.
type IssuesOutput struct {
	Input  string      `json:"input"`
	Issues []IssueJSON `json:"issues"`
	Count  int         `json:"count"`
}

// IssuesJSON writes the issue report, preserving emission order.
func IssuesJSON(w io.Writer, bag *diag.Bag, in *source.Input) error {
	out := IssuesOutput{Input: in.Name, Issues: []IssueJSON{}}
	if bag != nil {
		for _, is := range bag.Items() {
			line, col := in.LineCol(is.Span.Start)
			msg := is.Message
			if msg == "" {
				msg = is.Code.Title()
			}
			out.Issues = append(out.Issues, IssueJSON{
				Severity: is.Severity.String(),
				Code:     is.Code.ID(),
				Message:  msg,
				Raw:      is.Raw,
				Path:     is.Path,
				Location: LocationJSON{
					StartByte: is.Span.Start,
					EndByte:   is.Span.End,
					Line:      line,
					Col:       col,
				},
			})
		}
	}
	out.Count = len(out.Issues)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// MemberJSON references a group member: Entry indexes DatasetOutput's
// entry list for node members; Raw carries the literal text of a raw
// member, which has no entry of its own.
type MemberJSON struct {
	Entry *int   `json:"entry,omitempty"`
	Raw   string `json:"raw,omitempty"`
}

// FragmentJSON is one fragment of an entry.
type FragmentJSON struct {
	Kind    string       `json:"kind"`
	Raw     string       `json:"raw"`
	Members []MemberJSON `json:"members,omitempty"`
}

// EntryJSON is one dataset entry.
type EntryJSON struct {
	Name      string         `json:"name"`
	Fragments []FragmentJSON `json:"fragments,omitempty"`
}

// DatasetOutput is the structured dump of a parse result.
type DatasetOutput struct {
	Entries   []EntryJSON `json:"entries"`
	Roots     []int       `json:"roots"`
	Canonical string      `json:"canonical"`
}

// DatasetJSON writes the parsed structure plus its canonical rendering.
func DatasetJSON(w io.Writer, ds *ast.Dataset) error {
	out := BuildDatasetOutput(ds)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// BuildDatasetOutput converts a Dataset into its serialisable shape.
// Node members are encoded as indices into the entry list, raw members
// inline; this keeps identity visible even across duplicate names.
func BuildDatasetOutput(ds *ast.Dataset) DatasetOutput {
	index := make(map[ast.CharID]int, len(ds.Entries))
	for i, id := range ds.Entries {
		index[id] = i
	}

	out := DatasetOutput{Entries: []EntryJSON{}, Roots: []int{}}
	for _, id := range ds.Entries {
		c := ds.Builder.Char(id)
		ej := EntryJSON{Name: c.Name}
		for _, fid := range c.Frags {
			f := ds.Builder.Frag(fid)
			fj := FragmentJSON{Kind: f.Kind.String(), Raw: f.Raw}
			for _, m := range f.Members {
				mc := ds.Builder.Char(m)
				if mc.Kind == ast.CharRaw {
					fj.Members = append(fj.Members, MemberJSON{Raw: mc.Raw})
					continue
				}
				idx := index[m]
				fj.Members = append(fj.Members, MemberJSON{Entry: &idx})
			}
			ej.Fragments = append(ej.Fragments, fj)
		}
		out.Entries = append(out.Entries, ej)
	}
	for _, id := range canon.Roots(ds) {
		out.Roots = append(out.Roots, index[id])
	}
	out.Canonical = canon.Render(ds)
	return out
}
