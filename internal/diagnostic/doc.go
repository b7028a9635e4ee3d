// Package diagnostic provides structured warnings and errors reported by
// the mapping file validator and the auto-mapping checker.
//
// Key capabilities:
//   - Unknown column and unsupported property type reports per statement
//   - "did you mean" suggestions for unknown columns
//   - Structural problems of the mapping file
package diagnostic
