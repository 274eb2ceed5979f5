package driver

import (
	"fmt"
	"os"

	"roster/internal/source"
)

// CheckFileCached is CheckFile with a disk cache in front: an unchanged
// file (same content digest, same schema) skips the parse and restores
// its issues and canonical text from the cached payload. The second
// return value reports whether the cache served the result.
func CheckFileCached(path string, maxIssues int, cache *DiskCache) (*Result, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %q: %w", path, err)
	}
	content := string(data)

	if cache != nil {
		p, err := cache.Load(DigestOf(content))
		if err == nil && p != nil {
			return &Result{
				Input:     source.NewInput(path, content),
				Bag:       p.RestoreBag(),
				Canonical: p.Canonical,
				Stable:    p.Stable,
			}, true, nil
		}
	}

	res := ParseText(path, content, maxIssues)
	if cache != nil {
		// Best effort: a failed store never fails the check.
		_ = cache.Store(BuildExport(res))
	}
	return res, false, nil
}
