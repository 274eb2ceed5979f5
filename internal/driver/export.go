package driver

import (
	"crypto/sha256"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"roster/internal/ast"
	"roster/internal/canon"
	"roster/internal/diag"
	"roster/internal/source"
)

// Current schema version - increment when ExportPayload format changes.
const exportSchemaVersion uint16 = 1

// Digest is a sha256 over input content; it keys the disk cache.
type Digest [sha256.Size]byte

func DigestOf(content string) Digest {
	return sha256.Sum256([]byte(content))
}

// ExportMember encodes a group member. Entry is the index into Entries
// for node members, -1 for raw members, whose text sits in Raw.
type ExportMember struct {
	Entry int32
	Raw   string
}

type ExportFragment struct {
	Kind    uint8
	Raw     string
	Members []ExportMember
}

type ExportEntry struct {
	Name      string
	Fragments []ExportFragment
}

type ExportIssue struct {
	Severity uint8
	Code     uint8
	Raw      string
	Path     string
	Start    uint32
	End      uint32
	Message  string
}

// ExportPayload is the serialisable form of one check result, shared by
// `roster export` and the disk cache.
type ExportPayload struct {
	Schema      uint16
	Name        string
	ContentHash Digest
	Canonical   string
	Stable      bool
	Entries     []ExportEntry
	Roots       []int32
	Issues      []ExportIssue
}

// BuildExport flattens a Result into its payload.
func BuildExport(res *Result) *ExportPayload {
	ds := res.Dataset
	index := make(map[ast.CharID]int32, len(ds.Entries))
	for i, id := range ds.Entries {
		index[id] = int32(i)
	}

	p := &ExportPayload{
		Schema:      exportSchemaVersion,
		Name:        res.Input.Name,
		ContentHash: DigestOf(res.Input.Content),
		Canonical:   res.Canonical,
		Stable:      res.Stable,
	}
	for _, id := range ds.Entries {
		c := ds.Builder.Char(id)
		ee := ExportEntry{Name: c.Name}
		for _, fid := range c.Frags {
			f := ds.Builder.Frag(fid)
			ef := ExportFragment{Kind: uint8(f.Kind), Raw: f.Raw}
			for _, m := range f.Members {
				mc := ds.Builder.Char(m)
				if mc.Kind == ast.CharRaw {
					ef.Members = append(ef.Members, ExportMember{Entry: -1, Raw: mc.Raw})
					continue
				}
				ef.Members = append(ef.Members, ExportMember{Entry: index[m]})
			}
			ee.Fragments = append(ee.Fragments, ef)
		}
		p.Entries = append(p.Entries, ee)
	}
	for _, id := range canon.Roots(ds) {
		p.Roots = append(p.Roots, index[id])
	}
	for _, is := range ds.Issues() {
		p.Issues = append(p.Issues, ExportIssue{
			Severity: uint8(is.Severity),
			Code:     uint8(is.Code),
			Raw:      is.Raw,
			Path:     is.Path,
			Start:    is.Span.Start,
			End:      is.Span.End,
			Message:  is.Message,
		})
	}
	return p
}

// RestoreBag rebuilds a diag.Bag from cached issues so cached results
// print exactly like fresh ones.
func (p *ExportPayload) RestoreBag() *diag.Bag {
	bag := diag.NewBag(len(p.Issues) + 1)
	for _, is := range p.Issues {
		bag.Add(diag.Issue{
			Severity: diag.Severity(is.Severity),
			Code:     diag.Code(is.Code),
			Raw:      is.Raw,
			Path:     is.Path,
			Span:     source.Span{Start: is.Start, End: is.End},
			Message:  is.Message,
		})
	}
	return bag
}

// EncodeExport serialises the payload with msgpack.
func EncodeExport(p *ExportPayload) ([]byte, error) {
	data, err := msgpack.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export payload: %w", err)
	}
	return data, nil
}

// DecodeExport rejects payloads from other schema versions: the cache
// is a cache, re-parsing is always safe.
func DecodeExport(data []byte) (*ExportPayload, error) {
	var p ExportPayload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode export payload: %w", err)
	}
	if p.Schema != exportSchemaVersion {
		return nil, fmt.Errorf("export schema %d, want %d", p.Schema, exportSchemaVersion)
	}
	return &p, nil
}
