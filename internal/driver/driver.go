// Package driver wires the parse/render pipeline to files and
// directories for the CLI: single-input checks, parallel directory
// walks, progress events, and the export/cache payloads.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"roster/internal/ast"
	"roster/internal/canon"
	"roster/internal/diag"
	"roster/internal/parser"
	"roster/internal/source"
)

// RosterExt is the file extension CheckDir looks for.
const RosterExt = ".roster"

// Result is one checked input: the parse, its canonical rendering, and
// whether that rendering is a fixed point. Dataset is nil when the
// result came out of the disk cache; Bag is always populated.
type Result struct {
	Input     *source.Input
	Dataset   *ast.Dataset
	Bag       *diag.Bag
	Canonical string
	Stable    bool
}

// ParseText runs the full pipeline over in-memory text. Stability is
// verified, not assumed: render the parse, re-parse the rendering, and
// compare the second rendering with the first.
func ParseText(name, content string, maxIssues int) *Result {
	ds := parser.Parse(content, parser.Options{MaxIssues: maxIssues})
	c1 := canon.Render(ds)
	c2 := canon.Render(parser.Parse(c1, parser.Options{MaxIssues: maxIssues}))
	return &Result{
		Input:     source.NewInput(name, content),
		Dataset:   ds,
		Bag:       ds.Bag,
		Canonical: c1,
		Stable:    c1 == c2,
	}
}

// CheckFile reads and checks one roster file.
func CheckFile(path string, maxIssues int) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return ParseText(path, string(data), maxIssues), nil
}

// ListRosterFiles returns the sorted relative paths of all *.roster
// files under dir.
func ListRosterFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), RosterExt) {
			rel, relErr := filepath.Rel(dir, path)
			if relErr != nil {
				return relErr
			}
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every roster file under dir in parallel, bounded by
// GOMAXPROCS. Results come back in the sorted file order regardless of
// completion order. Parses are independent (no shared state besides the
// per-file bag), so this is plain fan-out. sink may be nil.
func CheckDir(ctx context.Context, dir string, maxIssues int, sink ProgressSink) ([]*Result, error) {
	files, err := ListRosterFiles(dir)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		emit(sink, Event{File: f, Stage: StageParse, Status: StatusQueued})
	}

	results := make([]*Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			emit(sink, Event{File: f, Stage: StageParse, Status: StatusWorking})
			res, err := CheckFile(filepath.Join(dir, f), maxIssues)
			if err != nil {
				emit(sink, Event{File: f, Stage: StageParse, Status: StatusError, Err: err})
				return err
			}
			results[i] = res
			emit(sink, Event{File: f, Stage: StageRender, Status: StatusDone})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
