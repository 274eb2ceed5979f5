package ast

type Hints struct{ Chars, Frags uint }

// Builder owns the arenas one parse allocates into.
type Builder struct {
	Chars *Arena[Character]
	Frags *Arena[Fragment]
}

func NewBuilder(hints Hints) *Builder {
	if hints.Chars == 0 {
		hints.Chars = 1 << 5
	}
	if hints.Frags == 0 {
		hints.Frags = 1 << 5
	}
	return &Builder{
		Chars: NewArena[Character](hints.Chars),
		Frags: NewArena[Fragment](hints.Frags),
	}
}

// NewNode allocates a named character with no fragments yet.
func (b *Builder) NewNode(name string) CharID {
	return CharID(b.Chars.Allocate(Character{Kind: CharNode, Name: name}))
}

// NewRaw allocates a raw character carrying the member text verbatim.
func (b *Builder) NewRaw(raw string) CharID {
	return CharID(b.Chars.Allocate(Character{Kind: CharRaw, Raw: raw}))
}

// NewInfo allocates an info fragment.
func (b *Builder) NewInfo(raw string) FragID {
	return FragID(b.Frags.Allocate(Fragment{Kind: FragInfo, Raw: raw}))
}

// NewAlias allocates an alias fragment.
func (b *Builder) NewAlias(raw string) FragID {
	return FragID(b.Frags.Allocate(Fragment{Kind: FragAlias, Raw: raw}))
}

// NewGroup allocates a group fragment with parsed members.
func (b *Builder) NewGroup(raw string, members []CharID) FragID {
	return FragID(b.Frags.Allocate(Fragment{Kind: FragGroup, Raw: raw, Members: members}))
}

// PushFrag appends a fragment to a node, preserving textual order.
func (b *Builder) PushFrag(char CharID, frag FragID) {
	c := b.Chars.Get(uint32(char))
	c.Frags = append(c.Frags, frag)
}

// Char is a read shortcut.
func (b *Builder) Char(id CharID) *Character {
	return b.Chars.Get(uint32(id))
}

// Frag is a read shortcut.
func (b *Builder) Frag(id FragID) *Fragment {
	return b.Frags.Get(uint32(id))
}
