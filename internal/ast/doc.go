// Package ast holds the parsed roster structure: characters, their
// fragments, and the Dataset that owns them.
//
// Characters and fragments live in arenas and are referenced by 1-based
// integer handles (CharID, FragID). Identity is the handle, never value
// equality: two characters with identical names are still distinct
// entries, which is what the "each node appears once" invariant is
// defined over. Zero is the null handle.
package ast
