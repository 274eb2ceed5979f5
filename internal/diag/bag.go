package diag

import (
	"fortio.org/safecast"
)

// Bag is the append-only, ordered issue sink threaded through one parse.
// Emission order is part of the tool's determinism contract: issues are
// never reordered or deduplicated.
type Bag struct {
	items   []Issue
	max     uint16
	dropped int
}

// NewBag creates a Bag capped at max issues. max <= 0 means a generous
// default; the cap exists so a pathological input cannot balloon memory.
func NewBag(max int) *Bag {
	if max <= 0 {
		max = 1024
	}
	capped, err := safecast.Convert[uint16](max)
	if err != nil {
		capped = ^uint16(0)
	}
	return &Bag{
		items: make([]Issue, 0, 8),
		max:   capped,
	}
}

// Add appends an issue, honoring the cap.
// Returns false if the issue was not added (cap reached).
func (b *Bag) Add(is Issue) bool {
	if len(b.items) >= int(b.max) {
		b.dropped++
		return false
	}
	b.items = append(b.items, is)
	return true
}

// Dropped counts issues refused after the cap was reached, so output
// can say the list is incomplete instead of pretending it is the total.
func (b *Bag) Dropped() int {
	return b.dropped
}

// NoteDropped folds another bag's dropped count in when merging.
func (b *Bag) NoteDropped(n int) {
	if n > 0 {
		b.dropped += n
	}
}

func (b *Bag) Cap() uint16 {
	return b.max
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether any issue has Severity >= Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any issue has Severity >= Warning.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Items returns a read-only view of the issues in emission order.
// Do not modify the returned slice; it aliases the Bag's storage.
func (b *Bag) Items() []Issue {
	return b.items
}

// Codes returns just the codes, in emission order. Test helper material.
func (b *Bag) Codes() []Code {
	codes := make([]Code, len(b.items))
	for i := range b.items {
		codes[i] = b.items[i].Code
	}
	return codes
}
