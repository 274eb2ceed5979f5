// Package diag defines the issue model shared by the scanner, parser and
// canonicalizer.
//
//   - Provide deterministic, serialisable records for every structural
//     problem found in roster text.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     issues without coupling to concrete storage or formatting layers.
//
// Nothing in this package is fatal: parsing always runs to completion and
// every problem becomes an Issue appended to a Bag, in emission order.
// The single suppressing code is MissingName, which drops the affected
// entry instead of fabricating a name; all other codes are advisory.
//
// Package diag does not perform any formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver.
package diag
