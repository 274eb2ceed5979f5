// Package fuzztests houses Go fuzz harnesses that exercise the roster
// pipeline (source -> parser -> canonical rendering). Its goal is to
// smoke test robustness and guard against panics or non-idempotent
// renderings on arbitrary inputs.
package fuzztests
