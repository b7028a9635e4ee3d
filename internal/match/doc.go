// Package match provides identifier normalization, Levenshtein distance and
// "did you mean" suggestions for matching result columns to struct properties.
//
// Key functions:
//   - PropertyKey / ColumnKey: lookup keys used by auto-mapping
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks property names that are close to an unknown column
package match
