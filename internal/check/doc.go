// Package check runs auto-mapping over the statements of a mapping file
// against result types loaded from Go source, and reports the unknown
// columns it detects as diagnostics.
//
// The detection is the same one the runtime mapper performs: the checker
// converts analyzed struct types into automap properties and hands them to
// an automap.Resolver configured with the mapping file settings. Under
// WARNING each detection becomes a warning diagnostic; under FAILING the
// first detection of a statement becomes an error diagnostic and the
// remaining columns of that statement are not checked. NONE reports nothing.
package check
