// Package shared holds row fragments embedded by the store result types.
// It lives in its own package so that loading rowmap/store alone sees it
// as an external dependency.
package shared

// Base carries columns common to several rows.
type Base struct {
	Note    string
	Version int64 `db:"version"`
}
