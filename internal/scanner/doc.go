// Package scanner provides the low-level bracket machinery under the
// roster parser: a depth-tracking walker over one string, the top-level
// entry splitter, and the readers that consume one (...) or [...] span.
//
// The scanner is conservative. It never repairs text: stray closers are
// reported and skipped, unmatched openers consume to end of string, and
// the inner text is always returned exactly as written (modulo nothing;
// trimming is the caller's business).
//
// All functions take a base offset so that issue spans are absolute in
// the original input even when scanning a nested substring.
package scanner
