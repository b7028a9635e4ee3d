// Package automap resolves result columns to struct properties and detects
// the columns auto-mapping cannot bind.
//
// For each column that is not explicitly mapped, the resolver looks for a
// property by db tag, then by case-insensitive name (optionally ignoring
// underscores). A column without a property, or with a property whose type
// has no type handler, is handed to the configured UnknownColumnBehavior:
//   - NONE: the column is left unmapped
//   - WARNING: a warning is logged and the column is left unmapped
//   - FAILING: resolution stops with a *behavior.UnknownColumnError
//
// Resolver works on a plain []Property so the same rules apply to runtime
// types (Mapper, via reflection) and to types loaded from source (package check).
package automap
