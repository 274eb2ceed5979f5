// Package parser turns roster text into an ast.Dataset.
//
// The grammar, informally: entries separated by top-level ';'; each
// entry is a name followed by any number of bracketed fragments;
// "(...)" is an info fragment kept whole; "[...]" is a group when its
// interior contains a nested '[', otherwise an alias. A bracketed list
// with a top-level ';' but no nested '[' could be read either way and
// is conservatively kept as a single alias, with an issue recorded.
//
// The parser never guesses, never repairs, and never fabricates names:
// an entry with nothing before its first bracket is dropped with a
// MissingName issue. Everything else parses to the most literal
// structure available while issues accumulate in the Bag.
//
// Parse is pure over its input and reentrant; independent calls may run
// concurrently. Recursion depth follows the bracket nesting depth of
// the input, so pathologically deep nesting is bounded only by the call
// stack.
package parser
